package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type contactMessagesRepo struct {
	mu     sync.RWMutex
	now    func() time.Time
	lastID int64
	rows   []models.ContactMessage
	byID   map[int64]int
}

func (r *contactMessagesRepo) List(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ContactMessage, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *contactMessagesRepo) Get(_ context.Context, id int64) (models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return models.ContactMessage{}, repo.ErrNotFound
	}
	return r.rows[i], nil
}

func (r *contactMessagesRepo) Create(_ context.Context, in models.NewContactMessage) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	m := models.ContactMessage{
		ID:        r.lastID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Read:      false,
		CreatedAt: r.now(),
	}
	r.byID[m.ID] = len(r.rows)
	r.rows = append(r.rows, m)
	return m, nil
}

func (r *contactMessagesRepo) MarkRead(_ context.Context, id int64) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return models.ContactMessage{}, repo.ErrNotFound
	}
	r.rows[i].Read = true
	return r.rows[i], nil
}
