package persisters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adelgado/libreta/pkg/models"
	"github.com/lib/pq"
)

const contactColumns = `id, user_id, name, email, phone, company, tags, notes, created_at, updated_at`

func scanContact(row interface {
	Scan(dest ...any) error
}) (models.Contact, error) {
	var (
		contact models.Contact
		tags    pq.StringArray
	)
	if err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Company,
		&tags,
		&contact.Notes,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return models.Contact{}, err
	}

	contact.Tags = []string(tags)

	return contact, nil
}

func (p *Persister) ListContacts(ctx context.Context, userID int64, params ListContactsParams) ([]models.Contact, int64, error) {
	p.log.Debug("Listing contacts", "userID", userID, "query", params.Query, "sort", params.SortColumn(), "dir", params.Direction(), "page", params.PageNumber(), "perPage", params.PageSize())

	where := `user_id = $1`
	args := []any{userID}
	if params.Query != "" {
		where += ` AND (name ILIKE $2 OR email ILIKE $2 OR company ILIKE $2)`
		args = append(args, "%"+params.Query+"%")
	}

	var total int64
	if err := p.db.QueryRowContext(
		ctx,
		`SELECT count(*) FROM contacts WHERE `+where,
		args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Sort column and direction are restricted to an allow-list by the
	// params accessors, so interpolating them here is safe.
	query := fmt.Sprintf(
		`SELECT %v FROM contacts WHERE %v ORDER BY %v %v LIMIT $%v OFFSET $%v`,
		contactColumns,
		where,
		params.SortColumn(),
		params.Direction(),
		len(args)+1,
		len(args)+2,
	)
	args = append(args, params.PageSize(), (params.PageNumber()-1)*params.PageSize())

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (p *Persister) CreateContact(ctx context.Context, userID int64, params models.ContactParams) (models.Contact, error) {
	p.log.Debug("Creating contact", "userID", userID, "name", params.Name)

	return scanContact(p.db.QueryRowContext(
		ctx,
		`INSERT INTO contacts (user_id, name, email, phone, company, tags, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+contactColumns,
		userID,
		params.Name,
		params.Email,
		params.Phone,
		params.Company,
		pq.Array(params.Tags),
		params.Notes,
	))
}

func (p *Persister) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	p.log.Debug("Getting contact", "id", id)

	contact, err := scanContact(p.db.QueryRowContext(
		ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, models.ErrNotFound
		}

		return models.Contact{}, err
	}

	return contact, nil
}

func (p *Persister) UpdateContact(ctx context.Context, id int64, params models.ContactParams) (models.Contact, error) {
	p.log.Debug("Updating contact", "id", id, "name", params.Name)

	contact, err := scanContact(p.db.QueryRowContext(
		ctx,
		`UPDATE contacts
		 SET name = $2, email = $3, phone = $4, company = $5, tags = $6, notes = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id,
		params.Name,
		params.Email,
		params.Phone,
		params.Company,
		pq.Array(params.Tags),
		params.Notes,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, models.ErrNotFound
		}

		return models.Contact{}, err
	}

	return contact, nil
}

func (p *Persister) DeleteContact(ctx context.Context, id int64) error {
	p.log.Debug("Deleting contact", "id", id)

	res, err := p.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected <= 0 {
		return models.ErrNotFound
	}

	return nil
}
