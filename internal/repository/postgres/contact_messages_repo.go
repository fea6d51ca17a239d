package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/portfolio-api/internal/models"
)

type contactMessagesRepo struct{ db DBTX }

const contactColumns = `id, name, email, message, read, created_at`

func scanContactMessage(row pgx.Row) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt)
	return m, err
}

func (r *contactMessagesRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap("list contact messages", err)
	}
	defer rows.Close()

	out := []models.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, wrap("scan contact message", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list contact messages", err)
	}
	return out, nil
}

func (r *contactMessagesRepo) Get(ctx context.Context, id int64) (models.ContactMessage, error) {
	m, err := scanContactMessage(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id=$1`, id))
	if err != nil {
		return models.ContactMessage{}, wrap("get contact message", err)
	}
	return m, nil
}

func (r *contactMessagesRepo) Create(ctx context.Context, in models.NewContactMessage) (models.ContactMessage, error) {
	m, err := scanContactMessage(r.db.QueryRow(ctx,
		`INSERT INTO contact_messages(name, email, message) VALUES($1,$2,$3)
		 RETURNING `+contactColumns,
		in.Name, in.Email, in.Message,
	))
	if err != nil {
		return models.ContactMessage{}, wrap("insert contact message", err)
	}
	return m, nil
}

// MarkRead sets read=true unconditionally, so a second call returns the
// same row unchanged.
func (r *contactMessagesRepo) MarkRead(ctx context.Context, id int64) (models.ContactMessage, error) {
	m, err := scanContactMessage(r.db.QueryRow(ctx,
		`UPDATE contact_messages SET read = true WHERE id=$1
		 RETURNING `+contactColumns, id))
	if err != nil {
		return models.ContactMessage{}, wrap("mark contact message read", err)
	}
	return m, nil
}
