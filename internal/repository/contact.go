package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model/contact"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, email, subject, message, status, created_at`

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func scanContact(row pgx.Row) (contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

// ListContacts returns messages newest first, optionally only those with status.
func (r *ContactRepository) ListContacts(ctx context.Context, status contact.Status) ([]contact.Contact, error) {
	stmt := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE ($1::text = '' OR status = $1)
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, stmt, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts, err := collectRows(rows, scanContact)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) GetContact(ctx context.Context, id int64) (*contact.Contact, error) {
	c, err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get contact id=%d: %w", id, err)
	}
	return &c, nil
}

// CreateContact stores a submitted message. Status is always "new".
func (r *ContactRepository) CreateContact(ctx context.Context, p *contact.SubmitContactPayload) (*contact.Contact, error) {
	stmt := `
		INSERT INTO contacts (name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, 'new')
		RETURNING ` + contactColumns

	c, err := scanContact(r.db.QueryRow(ctx, stmt, p.Name, p.Email, p.Subject, p.Message))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status contact.Status) (*contact.Contact, error) {
	stmt := `UPDATE contacts SET status = $1 WHERE id = $2 RETURNING ` + contactColumns

	c, err := scanContact(r.db.QueryRow(ctx, stmt, string(status), id))
	if err != nil {
		return nil, fmt.Errorf("failed to update contact status id=%d: %w", id, err)
	}
	return &c, nil
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete contact id=%d: %w", id, err)
	}
	return nil
}

func (r *ContactRepository) Stats(ctx context.Context) (*contact.Stats, error) {
	stmt := `
		SELECT
			COUNT(*) AS total_messages,
			COUNT(*) FILTER (WHERE status = 'new') AS new_messages,
			COUNT(*) FILTER (WHERE status = 'read') AS read_messages,
			COUNT(*) FILTER (WHERE status = 'replied') AS replied_messages,
			TO_CHAR(MAX(created_at), 'YYYY-MM-DD') AS last_message_date
		FROM contacts`

	var s contact.Stats
	err := r.db.QueryRow(ctx, stmt).Scan(
		&s.TotalMessages, &s.NewMessages, &s.ReadMessages, &s.RepliedMessages, &s.LastMessageDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact stats: %w", err)
	}
	return &s, nil
}
