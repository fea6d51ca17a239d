package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies the postgres migrations through a database/sql
// handle borrowed from the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	conn := stdlib.OpenDBFromPool(pool)
	defer conn.Close()
	return migrate(ctx, goose.DialectPostgres, conn, "migrations/postgres", log)
}

func RunSQLiteMigrations(ctx context.Context, conn *sql.DB, log *slog.Logger) error {
	return migrate(ctx, goose.DialectSQLite3, conn, "migrations/sqlite", log)
}

func migrate(ctx context.Context, dialect goose.Dialect, conn *sql.DB, dir string, log *slog.Logger) error {
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migrations dir %s: %w", dir, err)
	}
	provider, err := goose.NewProvider(dialect, conn, sub)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "file", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
