package persisters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelgado/libreta/pkg/models"
)

func seedContact(t *testing.T, m *Memory, userID int64, name, email, company string) models.Contact {
	t.Helper()

	contact, err := m.CreateContact(context.Background(), userID, models.ContactParams{
		Name:    name,
		Email:   email,
		Phone:   "555-0100",
		Company: company,
	})
	require.NoError(t, err)

	// Creation timestamps order the default sort; spread them out.
	contact.CreatedAt = contact.CreatedAt.Add(time.Duration(contact.ID) * time.Second)
	contact.UpdatedAt = contact.CreatedAt
	m.contacts[contact.ID] = contact

	return contact
}

func TestMemoryContactRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateContact(ctx, 1, models.ContactParams{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Phone:   "555-0199",
		Company: "Navy",
		Tags:    []string{"colleagues"},
		Notes:   "Compiler pioneer",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UserID)

	got, err := m.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryGetContactNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.GetContact(context.Background(), 42)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryUpdateReplacesAllFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created := seedContact(t, m, 1, "Old Name", "old@example.com", "Old Co")

	updated, err := m.UpdateContact(ctx, created.ID, models.ContactParams{
		Name:    "New Name",
		Email:   "new@example.com",
		Phone:   "555-0101",
		Company: "New Co",
		Tags:    []string{"updated"},
		Notes:   "",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "New Co", updated.Company)
	assert.Equal(t, []string{"updated"}, updated.Tags)
	assert.Empty(t, updated.Notes)
	assert.Equal(t, created.UserID, updated.UserID)
}

func TestMemoryDeleteContact(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created := seedContact(t, m, 1, "Gone", "gone@example.com", "Nowhere")

	require.NoError(t, m.DeleteContact(ctx, created.ID))

	_, err := m.GetContact(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, m.DeleteContact(ctx, created.ID), models.ErrNotFound)
}

func TestMemoryListContactsScopedToOwner(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seedContact(t, m, 1, "Mine", "mine@example.com", "Acme")
	seedContact(t, m, 2, "Theirs", "theirs@example.com", "Acme")

	contacts, total, err := m.ListContacts(ctx, 1, ListContactsParams{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, contacts, 1)
	for _, contact := range contacts {
		assert.Equal(t, int64(1), contact.UserID)
	}
}

func TestMemoryListContactsQueryIsCaseInsensitive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seedContact(t, m, 1, "Alice", "alice@acme.com", "Initech")
	seedContact(t, m, 1, "Bob", "bob@example.com", "ACME Corp")
	seedContact(t, m, 1, "Carol Acme", "carol@example.com", "Initech")
	seedContact(t, m, 1, "Dave", "dave@example.com", "Initech")

	contacts, total, err := m.ListContacts(ctx, 1, ListContactsParams{Query: "acme"})
	require.NoError(t, err)

	// Matches on email, company and name respectively.
	assert.Equal(t, int64(3), total)
	assert.Len(t, contacts, 3)
}

func TestMemoryListContactsSorting(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seedContact(t, m, 1, "Charlie", "c@example.com", "Acme")
	seedContact(t, m, 1, "Alice", "a@example.com", "Acme")
	seedContact(t, m, 1, "Bob", "b@example.com", "Acme")

	names := func(contacts []models.Contact) []string {
		out := []string{}
		for _, contact := range contacts {
			out = append(out, contact.Name)
		}
		return out
	}

	contacts, _, err := m.ListContacts(ctx, 1, ListContactsParams{Sort: SortByName, Dir: DirAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names(contacts))

	contacts, _, err = m.ListContacts(ctx, 1, ListContactsParams{Sort: SortByName, Dir: DirDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Bob", "Alice"}, names(contacts))

	// Unknown sort falls back to created_at, unknown direction to desc:
	// newest first.
	contacts, _, err = m.ListContacts(ctx, 1, ListContactsParams{Sort: "company", Dir: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Alice", "Charlie"}, names(contacts))
}

func TestMemoryListContactsPagination(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		seedContact(t, m, 1, fmt.Sprintf("Contact %02d", i), fmt.Sprintf("c%v@example.com", i), "Acme")
	}

	contacts, total, err := m.ListContacts(ctx, 1, ListContactsParams{Sort: SortByName, Dir: DirAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, contacts, DefaultPerPage)

	contacts, total, err = m.ListContacts(ctx, 1, ListContactsParams{Sort: SortByName, Dir: DirAsc, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Contact 10", contacts[0].Name)

	contacts, _, err = m.ListContacts(ctx, 1, ListContactsParams{Page: 99})
	require.NoError(t, err)
	assert.Empty(t, contacts)

	contacts, _, err = m.ListContacts(ctx, 1, ListContactsParams{Sort: SortByName, Dir: DirAsc, Page: 3, PerPage: 5})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Contact 10", contacts[0].Name)
}

func TestMemorySessions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user, err := m.CreateUser(ctx, "Ada", "ada@example.com", []byte("hash"))
	require.NoError(t, err)

	require.NoError(t, m.CreateSession(ctx, "token-1", user.ID))

	got, err := m.GetSessionUser(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = m.GetSessionUser(ctx, "unknown")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, m.DeleteSession(ctx, "token-1"))

	_, err = m.GetSessionUser(ctx, "token-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
