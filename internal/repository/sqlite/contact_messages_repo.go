package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type contactMessagesRepo struct {
	db  *sql.DB
	now func() time.Time
}

const contactColumns = `id, name, email, message, read, created_at`

func scanContactMessage(row scanner) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt)
	return m, err
}

func (r *contactMessagesRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
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
	m, err := scanContactMessage(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = ?`, id))
	if err != nil {
		return models.ContactMessage{}, wrap("get contact message", err)
	}
	return m, nil
}

func (r *contactMessagesRepo) Create(ctx context.Context, in models.NewContactMessage) (models.ContactMessage, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message, read, created_at) VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Email, in.Message, false, r.now(),
	)
	if err != nil {
		return models.ContactMessage{}, wrap("insert contact message", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ContactMessage{}, wrap("last insert id", err)
	}
	return r.Get(ctx, id)
}

func (r *contactMessagesRepo) MarkRead(ctx context.Context, id int64) (models.ContactMessage, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return models.ContactMessage{}, wrap("mark contact message read", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.ContactMessage{}, wrap("mark contact message read", err)
	}
	if n == 0 {
		return models.ContactMessage{}, repo.ErrNotFound
	}
	return r.Get(ctx, id)
}
