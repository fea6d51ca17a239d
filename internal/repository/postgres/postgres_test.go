package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/portfolio-api/internal/db"
	"github.com/baharkarakas/portfolio-api/internal/logger"
	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
	"github.com/baharkarakas/portfolio-api/internal/repository/repotest"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, repo.Repositories) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewRepositories(mock)
}

func TestProjectGet_NoRowsIsNotFound(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id=\$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Projects.Get(context.Background(), 9)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectList_ConnectionFailureIsInfraError(t *testing.T) {
	mock, r := newMock(t)
	down := errors.New("connection refused")
	mock.ExpectQuery(`SELECT .+ FROM projects ORDER BY created_at, id`).
		WillReturnError(down)

	_, err := r.Projects.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
	assert.Contains(t, err.Error(), "list projects")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectCreate_InsertFailureIsInfraError(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs("t", "d", []string(nil), []string{"Go"}, "https://github.com/x/y", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value"})

	_, err := r.Projects.Create(context.Background(), models.NewProject{
		Title: "t", Description: "d", Technologies: []string{"Go"}, GithubURL: "https://github.com/x/y",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
	assert.Contains(t, err.Error(), "insert project")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMarkRead(t *testing.T) {
	mock, r := newMock(t)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE contact_messages SET read = true WHERE id=\$1`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "message", "read", "created_at"}).
			AddRow(int64(4), "Ann", "ann@x.com", "hi", true, created))

	m, err := r.ContactMessages.MarkRead(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), m.ID)
	assert.True(t, m.Read)
	assert.Equal(t, created, m.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMarkRead_UnknownIsNotFound(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`UPDATE contact_messages SET read = true`).
		WithArgs(int64(77)).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.ContactMessages.MarkRead(context.Background(), 77)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactList(t *testing.T) {
	mock, r := newMock(t)
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM contact_messages ORDER BY created_at, id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "message", "read", "created_at"}).
			AddRow(int64(1), "A", "a@x.com", "one", false, t0).
			AddRow(int64(2), "B", "b@x.com", "two", true, t0.Add(time.Minute)))

	list, err := r.ContactMessages.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.True(t, list[1].Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactList_EmptyIsNotNil(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM contact_messages`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "message", "read", "created_at"}))

	list, err := r.ContactMessages.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUserCreate_UniqueViolationIsDuplicate(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("owner", "hash", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := r.Users.Create(context.Background(), models.NewUser{Username: "owner", Password: "hash"})

	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectCount(t *testing.T) {
	mock, r := newMock(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM projects`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := r.Projects.Count(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

// TestContract runs the shared storage contract against a real database.
// Set TEST_DATABASE_URL to a disposable database to enable it.
func TestContract(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.RunMigrations(ctx, pool, logger.Discard()))

	repotest.Suite{
		New: func(t *testing.T) repo.Repositories {
			_, err := pool.Exec(ctx, `TRUNCATE users, projects, contact_messages RESTART IDENTITY`)
			require.NoError(t, err)
			return NewRepositories(pool)
		},
		ClockSlack: 2 * time.Second,
	}.Run(t)
}
