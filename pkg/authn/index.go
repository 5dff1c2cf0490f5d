// Package authn issues and resolves the opaque bearer tokens that guard the
// API. A token is minted on login, stays valid until logout, and is gone for
// good afterwards; there is no refresh flow.
package authn

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/adelgado/libreta/pkg/models"
	"github.com/adelgado/libreta/pkg/persisters"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("missing or invalid token")
)

type Authner struct {
	log *slog.Logger

	store persisters.Store
}

func NewAuthner(log *slog.Logger, store persisters.Store) *Authner {
	return &Authner{
		log: log,

		store: store,
	}
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// Login verifies the credentials and, on success, persists and returns a new
// session token for the user. An unknown email and a wrong password are
// indistinguishable to the caller.
func (a *Authner) Login(ctx context.Context, email, password string) (models.User, string, error) {
	a.log.Debug("Handling login", "email", email)

	user, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}

		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token := newToken()
	if err := a.store.CreateSession(ctx, token, user.ID); err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Logout invalidates the session server-side. It is idempotent: an unknown
// or empty token is not an error.
func (a *Authner) Logout(ctx context.Context, token string) error {
	a.log.Debug("Handling logout")

	if token == "" {
		return nil
	}

	return a.store.DeleteSession(ctx, token)
}

// CurrentUser resolves a token to its owning user.
func (a *Authner) CurrentUser(ctx context.Context, token string) (models.User, error) {
	a.log.Debug("Resolving current user")

	if token == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.store.GetSessionUser(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrInvalidToken
		}

		return models.User{}, err
	}

	return user, nil
}

// HashPassword prepares a password for storage. It lives here so user
// provisioning and authentication share one policy.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
