package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/portfolio-api/internal/models"
)

var (
	// ErrNotFound is returned for lookups of ids or usernames that do not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Every error other than the sentinels above is an infrastructure fault of
// the backing store.

type Users interface {
	Get(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, u models.NewUser) (models.User, error)
}

// Projects are listed in creation order.
type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, p models.NewProject) (models.Project, error)
	Count(ctx context.Context) (int64, error)
}

// ContactMessages are listed in creation order. MarkRead is idempotent.
type ContactMessages interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Get(ctx context.Context, id int64) (models.ContactMessage, error)
	Create(ctx context.Context, m models.NewContactMessage) (models.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (models.ContactMessage, error)
}

// Repositories is the storage boundary handed to the services. Each backend
// package builds one from its own connection.
type Repositories struct {
	Users           Users
	Projects        Projects
	ContactMessages ContactMessages
}
