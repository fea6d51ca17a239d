package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"APP_MIGRATE", "SEED_PROJECTS", "STATIC_DIR", "RATE_RPS", "CORS_ORIGINS", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "portfolio.db", cfg.SQLitePath)
	assert.True(t, cfg.Migrate)
	assert.True(t, cfg.SeedProjects)
	assert.Equal(t, "client/public", cfg.StaticDir)
	assert.Equal(t, 20, cfg.RateRPS)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("APP_MIGRATE", "false")
	t.Setenv("RATE_RPS", "0")
	t.Setenv("CORS_ORIGINS", "https://a.dev, https://b.dev,")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.False(t, cfg.Migrate)
	assert.Equal(t, 0, cfg.RateRPS)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.CORSOrigins)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_RPS", "lots")
	t.Setenv("SEED_PROJECTS", "maybe")

	cfg := Load()

	assert.Equal(t, 20, cfg.RateRPS)
	assert.True(t, cfg.SeedProjects)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "memory", cfg: Config{StorageDriver: DriverMemory}},
		{name: "sqlite", cfg: Config{StorageDriver: DriverSQLite}},
		{name: "postgres with url", cfg: Config{StorageDriver: DriverPostgres, DatabaseURL: "postgres://x"}},
		{name: "postgres without url", cfg: Config{StorageDriver: DriverPostgres}, wantErr: "DATABASE_URL"},
		{name: "unknown driver", cfg: Config{StorageDriver: "mongo"}, wantErr: "unknown STORAGE_DRIVER"},
		{name: "half bootstrap", cfg: Config{StorageDriver: DriverMemory, BootstrapUsername: "owner"}, wantErr: "BOOTSTRAP_"},
		{name: "full bootstrap", cfg: Config{StorageDriver: DriverMemory, BootstrapUsername: "owner", BootstrapPassword: "pw"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_MissingURLIsErrMissingEnv(t *testing.T) {
	err := Config{StorageDriver: DriverPostgres}.Validate()
	assert.ErrorIs(t, err, ErrMissingEnv)
}
