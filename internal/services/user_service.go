package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/auth"
	"github.com/baharkarakas/portfolio-api/internal/config"
	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type UserService struct {
	r   repo.Users
	log *slog.Logger
}

func NewUserService(r repo.Users, log *slog.Logger) *UserService {
	return &UserService{r: r, log: log}
}

// Register validates the input, hashes the password and stores the user.
// A taken username yields repository.ErrDuplicateUsername.
func (s *UserService) Register(ctx context.Context, in validate.UserInput) (models.User, error) {
	in.Normalize()
	if err := validate.Check(in); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.r.Create(ctx, models.NewUser{Username: in.Username, Password: hash, Email: in.Email})
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.r.Get(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return s.r.GetByUsername(ctx, username)
}

// EnsureBootstrapUser creates the configured owner account unless the
// username already exists, in which case the stored credential is checked
// against the configured password and a mismatch is logged. It reports
// whether a user was created.
func (s *UserService) EnsureBootstrapUser(ctx context.Context, cfg config.Config) (bool, error) {
	if !cfg.HasBootstrapUser() {
		return false, nil
	}
	in := validate.UserInput{Username: cfg.BootstrapUsername, Password: cfg.BootstrapPassword}
	if cfg.BootstrapEmail != "" {
		email := cfg.BootstrapEmail
		in.Email = &email
	}
	u, err := s.Register(ctx, in)
	switch {
	case errors.Is(err, repo.ErrDuplicateUsername):
		return false, s.checkBootstrapCredential(ctx, cfg)
	case err != nil:
		return false, fmt.Errorf("bootstrap user: %w", err)
	}
	s.log.Info("bootstrap user created", "id", u.ID, "username", u.Username)
	return true, nil
}

// checkBootstrapCredential never overwrites the stored hash.
func (s *UserService) checkBootstrapCredential(ctx context.Context, cfg config.Config) error {
	u, err := s.r.GetByUsername(ctx, strings.TrimSpace(cfg.BootstrapUsername))
	if err != nil {
		return fmt.Errorf("bootstrap user lookup: %w", err)
	}
	switch err := auth.VerifyPassword(cfg.BootstrapPassword, u.Password); {
	case errors.Is(err, auth.ErrMismatch):
		s.log.Warn("bootstrap password does not match the stored credential", "username", u.Username)
	case err != nil:
		s.log.Warn("bootstrap credential unreadable", "username", u.Username, "err", err)
	default:
		s.log.Debug("bootstrap user already present", "username", u.Username)
	}
	return nil
}
