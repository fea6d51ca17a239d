package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrMissingEnv = errors.New("environment variable not set")

type Config struct {
	Env           string
	HTTPPort      string
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string
	Migrate       bool
	SeedProjects  bool
	StaticDir     string
	RateRPS       int
	CORSOrigins   []string
	// honour X-Forwarded-For / X-Real-IP; only safe behind a proxy that sets them
	TrustProxy    bool

	// optional owner account, created once at startup
	BootstrapUsername string
	BootstrapPassword string
	BootstrapEmail    string
}

func Load() Config {
	cfg := Config{
		Env:               get("APP_ENV", "dev"),
		HTTPPort:          get("HTTP_PORT", "8080"),
		StorageDriver:     strings.ToLower(get("STORAGE_DRIVER", DriverPostgres)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        get("SQLITE_PATH", "portfolio.db"),
		Migrate:           getBool("APP_MIGRATE", true),
		SeedProjects:      getBool("SEED_PROJECTS", true),
		StaticDir:         get("STATIC_DIR", "client/public"),
		RateRPS:           getInt("RATE_RPS", 20),
		CORSOrigins:       splitList(get("CORS_ORIGINS", "*")),
		TrustProxy:        getBool("TRUST_PROXY", false),
		BootstrapUsername: os.Getenv("BOOTSTRAP_USERNAME"),
		BootstrapPassword: os.Getenv("BOOTSTRAP_PASSWORD"),
		BootstrapEmail:    os.Getenv("BOOTSTRAP_EMAIL"),
	}
	return cfg
}

// Validate reports configuration that makes startup impossible.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL (required by the %s driver)", ErrMissingEnv, DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if (c.BootstrapUsername == "") != (c.BootstrapPassword == "") {
		return errors.New("BOOTSTRAP_USERNAME and BOOTSTRAP_PASSWORD must be set together")
	}
	return nil
}

func (c Config) HasBootstrapUser() bool { return c.BootstrapUsername != "" }

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
