package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/portfolio-api/internal/api/handlers"
	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
	"github.com/baharkarakas/portfolio-api/internal/config"
	"github.com/baharkarakas/portfolio-api/internal/metrics"
	"github.com/baharkarakas/portfolio-api/internal/middleware"
	"github.com/baharkarakas/portfolio-api/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	Log        *slog.Logger
	ProjectSvc *services.ProjectService
	ContactSvc *services.ContactService
}

func NewRouter(d RouterDeps) http.Handler {
	projects := handlers.NewProjectHandler(d.ProjectSvc, d.Log)
	contact := handlers.NewContactHandler(d.ContactSvc, d.Log)

	r := chi.NewRouter()
	if d.Cfg.TrustProxy {
		// rewrites RemoteAddr, which RateLimit keys on
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID, middleware.HTTPMetrics(d.Log), middleware.Recover(d.Log))
	r.Use(middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed", nil)
	})

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Method(http.MethodGet, "/static/"+handlers.BackgroundImage, handlers.StaticImage{Dir: d.Cfg.StaticDir})

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.List)
			r.Post("/", projects.Create)
			r.Get("/{id}", projects.Get)
		})
		r.Route("/contact", func(r chi.Router) {
			r.Get("/", contact.List)
			r.Post("/", contact.Submit)
			r.Patch("/{id}/read", contact.MarkRead)
		})
	})

	return r
}
