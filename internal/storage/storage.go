// Package storage opens the repository backend selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/portfolio-api/internal/config"
	"github.com/baharkarakas/portfolio-api/internal/db"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
	"github.com/baharkarakas/portfolio-api/internal/repository/memory"
	"github.com/baharkarakas/portfolio-api/internal/repository/postgres"
	"github.com/baharkarakas/portfolio-api/internal/repository/sqlite"
)

// Store bundles the repositories with the release of their connection.
type Store struct {
	repo.Repositories
	Driver string
	closer func()
}

func (s *Store) Close() {
	if s.closer != nil {
		s.closer()
	}
}

// Open connects to cfg.StorageDriver and, when cfg.Migrate is set, applies
// the embedded migrations before returning.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return &Store{Repositories: memory.NewRepositories(), Driver: cfg.StorageDriver}, nil

	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Store{Repositories: postgres.NewRepositories(pool), Driver: cfg.StorageDriver, closer: pool.Close}, nil

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite %s: %w", cfg.SQLitePath, err)
		}
		if cfg.Migrate {
			if err := db.RunSQLiteMigrations(ctx, conn, log); err != nil {
				conn.Close()
				return nil, err
			}
		}
		closer := func() {
			if err := conn.Close(); err != nil {
				log.Error("close sqlite", "err", err)
			}
		}
		return &Store{Repositories: sqlite.NewRepositories(conn), Driver: cfg.StorageDriver, closer: closer}, nil
	}

	// unreachable after Validate
	return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}
