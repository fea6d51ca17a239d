package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type projectsRepo struct {
	mu     sync.RWMutex
	now    func() time.Time
	lastID int64
	rows   []models.Project // insertion order == creation order
	byID   map[int64]int
}

func (r *projectsRepo) List(_ context.Context) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Project, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *projectsRepo) Get(_ context.Context, id int64) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return models.Project{}, repo.ErrNotFound
	}
	return r.rows[i].Clone(), nil
}

func (r *projectsRepo) Create(_ context.Context, in models.NewProject) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	p := models.Project{
		ID:           r.lastID,
		Title:        in.Title,
		Description:  in.Description,
		Insights:     in.Insights,
		Technologies: in.Technologies,
		GithubURL:    in.GithubURL,
		ReportURL:    in.ReportURL,
		CreatedAt:    r.now(),
	}.Clone()
	r.byID[p.ID] = len(r.rows)
	r.rows = append(r.rows, p)
	return p.Clone(), nil
}

func (r *projectsRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}
