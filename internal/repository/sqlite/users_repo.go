package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type usersRepo struct {
	db  *sql.DB
	now func() time.Time
}

const userColumns = `id, username, password, email, is_admin, created_at`

func scanUser(row *sql.Row) (models.User, error) {
	var (
		u     models.User
		email sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &email, &u.IsAdmin, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	u.Email = stringPtr(email)
	return u, nil
}

func (r *usersRepo) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return models.User{}, wrap("get user", err)
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return models.User{}, wrap("get user by username", err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, in models.NewUser) (models.User, error) {
	now := r.now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, email, is_admin, created_at) VALUES (?, ?, ?, ?, ?)`,
		in.Username, in.Password, nullString(in.Email), false, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, repo.ErrDuplicateUsername
		}
		return models.User{}, wrap("insert user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, wrap("last insert id", err)
	}
	return r.Get(ctx, id)
}
