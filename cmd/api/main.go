package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/api"
	"github.com/baharkarakas/portfolio-api/internal/config"
	"github.com/baharkarakas/portfolio-api/internal/logger"
	"github.com/baharkarakas/portfolio-api/internal/metrics"
	"github.com/baharkarakas/portfolio-api/internal/services"
	"github.com/baharkarakas/portfolio-api/internal/storage"
	"github.com/baharkarakas/portfolio-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("storage ready", "driver", store.Driver, "migrate", cfg.Migrate)

	metrics.Init()
	wp := worker.NewPool(2, log)
	defer wp.Stop()

	projectSvc := services.NewProjectService(store.Projects, log)
	contactSvc := services.NewContactService(store.ContactMessages, wp, services.LogNotifier{Log: log}, log)
	userSvc := services.NewUserService(store.Users, log)

	if cfg.SeedProjects {
		if _, err := projectSvc.SeedDefaults(ctx); err != nil {
			return err
		}
	}
	if _, err := userSvc.EnsureBootstrapUser(ctx, cfg); err != nil {
		return err
	}

	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		ProjectSvc: projectSvc,
		ContactSvc: contactSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
