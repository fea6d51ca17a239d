// Package repotest holds the behaviour every storage backend must share.
// Backend packages call Run from their own tests.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type Suite struct {
	// New returns empty repositories.
	New func(t *testing.T) repo.Repositories
	// ClockSlack tolerates store clocks that differ from the test process.
	ClockSlack time.Duration
}

func strPtr(s string) *string { return &s }

func (s Suite) Run(t *testing.T) {
	t.Run("ProjectCreateThenGet", s.projectCreateThenGet)
	t.Run("ProjectOptionalFieldsStayNull", s.projectOptionalFieldsStayNull)
	t.Run("ProjectListKeepsCreationOrder", s.projectListKeepsCreationOrder)
	t.Run("ProjectGetUnknown", s.projectGetUnknown)
	t.Run("ProjectCount", s.projectCount)
	t.Run("ContactLifecycle", s.contactLifecycle)
	t.Run("ContactMarkReadUnknown", s.contactMarkReadUnknown)
	t.Run("ContactListKeepsCreationOrder", s.contactListKeepsCreationOrder)
	t.Run("IdsBeyondInt32AreNotFound", s.idsBeyondInt32AreNotFound)
	t.Run("Users", s.users)
}

func (s Suite) projectCreateThenGet(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)
	before := time.Now().Add(-s.ClockSlack)

	in := models.NewProject{
		Title:        "Telecommunication Churn Prediction",
		Description:  "Predicts churn.",
		Insights:     []string{"contract type matters", "89% accuracy"},
		Technologies: []string{"Python", "SQL"},
		GithubURL:    "https://github.com/example/churn",
		ReportURL:    strPtr("https://example.com/churn.pdf"),
	}
	created, err := r.Projects.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.Before(before), "createdAt %v before %v", created.CreatedAt, before)

	got, err := r.Projects.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Insights, got.Insights)
	assert.Equal(t, in.Technologies, got.Technologies)
	assert.Equal(t, in.GithubURL, got.GithubURL)
	require.NotNil(t, got.ReportURL)
	assert.Equal(t, *in.ReportURL, *got.ReportURL)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func (s Suite) projectOptionalFieldsStayNull(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	created, err := r.Projects.Create(ctx, models.NewProject{
		Title: "Bare", Description: "No extras", GithubURL: "https://github.com/example/bare",
	})
	require.NoError(t, err)

	got, err := r.Projects.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Insights)
	assert.Nil(t, got.Technologies)
	assert.Nil(t, got.ReportURL)
}

func (s Suite) projectListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	list, err := r.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, title := range []string{"A", "B", "C"} {
		_, err := r.Projects.Create(ctx, models.NewProject{Title: title, Description: "d", GithubURL: "https://github.com/x/" + title})
		require.NoError(t, err)
	}

	list, err = r.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, "B", list[1].Title)
	assert.Equal(t, "C", list[2].Title)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func (s Suite) projectGetUnknown(t *testing.T) {
	r := s.New(t)
	_, err := r.Projects.Get(context.Background(), 424242)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func (s Suite) projectCount(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	n, err := r.Projects.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = r.Projects.Create(ctx, models.NewProject{Title: "t", Description: "d", GithubURL: "https://github.com/x/y"})
	require.NoError(t, err)

	n, err = r.Projects.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func (s Suite) contactLifecycle(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	m, err := r.ContactMessages.Create(ctx, models.NewContactMessage{Name: "Ann", Email: "ann@x.com", Message: "hi"})
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	assert.False(t, m.Read)

	got, err := r.ContactMessages.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.False(t, got.Read)

	first, err := r.ContactMessages.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	second, err := r.ContactMessages.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Message, second.Message)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

	list, err := r.ContactMessages.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)
}

func (s Suite) contactMarkReadUnknown(t *testing.T) {
	r := s.New(t)
	_, err := r.ContactMessages.MarkRead(context.Background(), 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = r.ContactMessages.Get(context.Background(), 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func (s Suite) idsBeyondInt32AreNotFound(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)
	const id = int64(3_000_000_000)

	_, err := r.Projects.Get(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.ContactMessages.Get(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.ContactMessages.MarkRead(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.Users.Get(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func (s Suite) contactListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := r.ContactMessages.Create(ctx, models.NewContactMessage{Name: name, Email: name + "@x.com", Message: "m"})
		require.NoError(t, err)
	}

	list, err := r.ContactMessages.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func (s Suite) users(t *testing.T) {
	ctx := context.Background()
	r := s.New(t)

	u, err := r.Users.Create(ctx, models.NewUser{Username: "owner", Password: "hash"})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	assert.False(t, u.IsAdmin)
	assert.Nil(t, u.Email)

	byName, err := r.Users.GetByUsername(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "hash", byName.Password)

	byID, err := r.Users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", byID.Username)

	_, err = r.Users.Create(ctx, models.NewUser{Username: "owner", Password: "other"})
	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)

	withEmail, err := r.Users.Create(ctx, models.NewUser{Username: "second", Password: "h", Email: strPtr("s@x.com")})
	require.NoError(t, err)
	require.NotNil(t, withEmail.Email)
	assert.Equal(t, "s@x.com", *withEmail.Email)

	_, err = r.Users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.Users.Get(ctx, 987654)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
