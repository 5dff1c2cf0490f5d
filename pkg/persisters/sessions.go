package persisters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adelgado/libreta/pkg/models"
)

func (p *Persister) CreateSession(ctx context.Context, token string, userID int64) error {
	p.log.Debug("Creating session", "userID", userID)

	_, err := p.db.ExecContext(
		ctx,
		`INSERT INTO sessions (token, user_id) VALUES ($1, $2)`,
		token,
		userID,
	)

	return err
}

func (p *Persister) GetSessionUser(ctx context.Context, token string) (models.User, error) {
	p.log.Debug("Resolving session")

	var user models.User
	if err := p.db.QueryRowContext(
		ctx,
		`SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.token = $1`,
		token,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}

		return models.User{}, err
	}

	return user, nil
}

func (p *Persister) DeleteSession(ctx context.Context, token string) error {
	p.log.Debug("Deleting session")

	_, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)

	return err
}
