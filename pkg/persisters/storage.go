package persisters

import (
	"context"

	"github.com/adelgado/libreta/pkg/models"
)

const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"

	DirAsc  = "asc"
	DirDesc = "desc"

	DefaultPerPage = 10
)

// ListContactsParams carries the raw, unvalidated query parameters of a
// contact listing. Accessors normalize them: unknown sort columns fall back
// to created_at, unknown directions to desc, the page floor is 1 and the
// page size defaults to 10.
type ListContactsParams struct {
	Query   string
	Sort    string
	Dir     string
	Page    int
	PerPage int
}

func (p ListContactsParams) SortColumn() string {
	switch p.Sort {
	case SortByName, SortByCreatedAt:
		return p.Sort

	default:
		return SortByCreatedAt
	}
}

func (p ListContactsParams) Direction() string {
	switch p.Dir {
	case DirAsc, DirDesc:
		return p.Dir

	default:
		return DirDesc
	}
}

func (p ListContactsParams) PageNumber() int {
	if p.Page < 1 {
		return 1
	}

	return p.Page
}

func (p ListContactsParams) PageSize() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}

	return p.PerPage
}

// Store is the persistence surface the controllers and the session service
// are written against. It is implemented by the Postgres-backed Persister
// and by the in-memory store used in tests.
type Store interface {
	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	CreateSession(ctx context.Context, token string, userID int64) error
	GetSessionUser(ctx context.Context, token string) (models.User, error)
	DeleteSession(ctx context.Context, token string) error

	ListContacts(ctx context.Context, userID int64, params ListContactsParams) ([]models.Contact, int64, error)
	CreateContact(ctx context.Context, userID int64, params models.ContactParams) (models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	UpdateContact(ctx context.Context, id int64, params models.ContactParams) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}
