package persisters

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adelgado/libreta/pkg/models"
)

// Memory is a mutex-guarded in-memory Store with the same semantics as the
// Postgres persister. It backs the tests and local experimentation.
type Memory struct {
	mu sync.RWMutex

	users    map[int64]models.User
	sessions map[string]models.Session
	contacts map[int64]models.Contact

	nextUserID    int64
	nextContactID int64
}

func NewMemory() *Memory {
	return &Memory{
		users:    map[int64]models.User{},
		sessions: map[string]models.Session{},
		contacts: map[int64]models.Contact{},
	}
}

func (m *Memory) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUserID++
	user := models.User{
		ID:           m.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user

	return user, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, models.ErrNotFound
}

func (m *Memory) CreateSession(ctx context.Context, token string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[token] = models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	return nil
}

func (m *Memory) GetSessionUser(ctx context.Context, token string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[token]
	if !ok {
		return models.User{}, models.ErrNotFound
	}

	user, ok := m.users[session.UserID]
	if !ok {
		return models.User{}, models.ErrNotFound
	}

	return user, nil
}

func (m *Memory) DeleteSession(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)

	return nil
}

func matchesQuery(contact models.Contact, query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	return strings.Contains(strings.ToLower(contact.Name), query) ||
		strings.Contains(strings.ToLower(contact.Email), query) ||
		strings.Contains(strings.ToLower(contact.Company), query)
}

func (m *Memory) ListContacts(ctx context.Context, userID int64, params ListContactsParams) ([]models.Contact, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := []models.Contact{}
	for _, contact := range m.contacts {
		if contact.UserID == userID && matchesQuery(contact, params.Query) {
			matches = append(matches, contact)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		var less bool
		switch params.SortColumn() {
		case SortByName:
			less = matches[i].Name < matches[j].Name

		default:
			less = matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}

		if params.Direction() == DirDesc {
			return !less
		}

		return less
	})

	total := int64(len(matches))

	offset := (params.PageNumber() - 1) * params.PageSize()
	if offset > len(matches) {
		offset = len(matches)
	}

	end := offset + params.PageSize()
	if end > len(matches) {
		end = len(matches)
	}

	return matches[offset:end], total, nil
}

func (m *Memory) CreateContact(ctx context.Context, userID int64, params models.ContactParams) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextContactID++
	now := time.Now()
	contact := models.Contact{
		ID:        m.nextContactID,
		UserID:    userID,
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Company:   params.Company,
		Tags:      append([]string{}, params.Tags...),
		Notes:     params.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.contacts[contact.ID] = contact

	return contact, nil
}

func (m *Memory) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contact, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, models.ErrNotFound
	}

	return contact, nil
}

func (m *Memory) UpdateContact(ctx context.Context, id int64, params models.ContactParams) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, models.ErrNotFound
	}

	contact.Name = params.Name
	contact.Email = params.Email
	contact.Phone = params.Phone
	contact.Company = params.Company
	contact.Tags = append([]string{}, params.Tags...)
	contact.Notes = params.Notes
	contact.UpdatedAt = time.Now()
	m.contacts[id] = contact

	return contact, nil
}

func (m *Memory) DeleteContact(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[id]; !ok {
		return models.ErrNotFound
	}

	delete(m.contacts, id)

	return nil
}
