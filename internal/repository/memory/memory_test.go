package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
	"github.com/baharkarakas/portfolio-api/internal/repository/repotest"
)

func TestContract(t *testing.T) {
	repotest.Suite{New: func(*testing.T) repo.Repositories { return NewRepositories() }}.Run(t)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	r := NewRepositories()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := r.ContactMessages.Create(ctx, models.NewContactMessage{Name: "n", Email: "e@x.com", Message: "m"})
			assert.NoError(t, err)
			ids <- m.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "id %d missing", id)
	}
}

func TestCreateUsesClock(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewRepositoriesWithClock(func() time.Time { return fixed })

	p, err := r.Projects.Create(context.Background(), models.NewProject{Title: "t", Description: "d", GithubURL: "g"})
	require.NoError(t, err)
	assert.Equal(t, fixed, p.CreatedAt)
}

func TestCreatedAtIsUTC(t *testing.T) {
	ctx := context.Background()
	r := NewRepositories()

	p, err := r.Projects.Create(ctx, models.NewProject{Title: "t", Description: "d", GithubURL: "g"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, p.CreatedAt.Location())

	m, err := r.ContactMessages.Create(ctx, models.NewContactMessage{Name: "Ann", Email: "ann@x.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, m.CreatedAt.Location())

	u, err := r.Users.Create(ctx, models.NewUser{Username: "owner", Password: "h"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	r := NewRepositories()
	ctx := context.Background()

	insights := []string{"one"}
	p, err := r.Projects.Create(ctx, models.NewProject{Title: "t", Description: "d", GithubURL: "g", Insights: insights})
	require.NoError(t, err)

	insights[0] = "mutated by caller"
	p.Insights[0] = "mutated by caller"

	got, err := r.Projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, got.Insights)
}

func TestIDsAreNeverReusedAcrossKinds(t *testing.T) {
	r := NewRepositories()
	ctx := context.Background()

	p, err := r.Projects.Create(ctx, models.NewProject{Title: "t", Description: "d", GithubURL: "g"})
	require.NoError(t, err)
	m, err := r.ContactMessages.Create(ctx, models.NewContactMessage{Name: "n", Email: "e", Message: "m"})
	require.NoError(t, err)

	// each table has its own sequence
	assert.EqualValues(t, 1, p.ID)
	assert.EqualValues(t, 1, m.ID)
}
