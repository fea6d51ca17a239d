package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type usersRepo struct {
	mu     sync.RWMutex
	now    func() time.Time
	lastID int64
	rows   []models.User
	byID   map[int64]int
}

func (r *usersRepo) Get(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return cloneUser(r.rows[i]), nil
}

func (r *usersRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.rows {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *usersRepo) Create(_ context.Context, in models.NewUser) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Username == in.Username {
			return models.User{}, repo.ErrDuplicateUsername
		}
	}
	r.lastID++
	u := models.User{
		ID:        r.lastID,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		IsAdmin:   false,
		CreatedAt: r.now(),
	}
	u = cloneUser(u)
	r.byID[u.ID] = len(r.rows)
	r.rows = append(r.rows, u)
	return cloneUser(u), nil
}

func cloneUser(u models.User) models.User {
	if u.Email != nil {
		e := *u.Email
		u.Email = &e
	}
	return u
}
