package persisters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adelgado/libreta/pkg/models"
)

func (p *Persister) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (models.User, error) {
	p.log.Debug("Creating user", "name", name, "email", email)

	var user models.User
	if err := p.db.QueryRowContext(
		ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, password_hash, created_at`,
		name,
		email,
		passwordHash,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (p *Persister) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	p.log.Debug("Getting user", "email", email)

	var user models.User
	if err := p.db.QueryRowContext(
		ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}

		return models.User{}, err
	}

	return user, nil
}
