package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type usersRepo struct{ db DBTX }

const userColumns = `id, username, password, email, is_admin, created_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.IsAdmin, &u.CreatedAt)
	return u, err
}

func (r *usersRepo) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		return models.User{}, wrap("get user", err)
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username))
	if err != nil {
		return models.User{}, wrap("get user by username", err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, in models.NewUser) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users(username, password, email) VALUES($1,$2,$3)
		 RETURNING `+userColumns,
		in.Username, in.Password, in.Email,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, repo.ErrDuplicateUsername
		}
		return models.User{}, wrap("insert user", err)
	}
	return u, nil
}
