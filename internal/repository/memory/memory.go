// Package memory is the volatile storage backend. Each entity kind lives in
// its own table guarded by a mutex; ids come from a per-table counter that
// starts at 1 and is never reused.
package memory

import (
	"time"

	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

// NewRepositories returns empty in-memory tables stamping createdAt in UTC,
// like the SQL backends.
func NewRepositories() repo.Repositories {
	return NewRepositoriesWithClock(func() time.Time { return time.Now().UTC() })
}

// NewRepositoriesWithClock is NewRepositories with a controllable createdAt source.
func NewRepositoriesWithClock(now func() time.Time) repo.Repositories {
	return repo.Repositories{
		Users:           &usersRepo{now: now, byID: map[int64]int{}},
		Projects:        &projectsRepo{now: now, byID: map[int64]int{}},
		ContactMessages: &contactMessagesRepo{now: now, byID: map[int64]int{}},
	}
}
