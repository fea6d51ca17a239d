// Package sqlite is the single-file persistent backend. String collections
// are stored as JSON text; createdAt is assigned by the application in UTC.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

func NewRepositories(db *sql.DB) repo.Repositories {
	now := func() time.Time { return time.Now().UTC() }
	return repo.Repositories{
		Users:           &usersRepo{db: db, now: now},
		Projects:        &projectsRepo{db: db, now: now},
		ContactMessages: &contactMessagesRepo{db: db, now: now},
	}
}

func wrap(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func encodeList(items []string) (sql.NullString, error) {
	if items == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeList(v sql.NullString) ([]string, error) {
	if !v.Valid {
		return nil, nil
	}
	out := []string{}
	if err := json.Unmarshal([]byte(v.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
