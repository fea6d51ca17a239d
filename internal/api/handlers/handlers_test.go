package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/portfolio-api/internal/logger"
	"github.com/baharkarakas/portfolio-api/internal/middleware"
	"github.com/baharkarakas/portfolio-api/internal/models"
	"github.com/baharkarakas/portfolio-api/internal/services"
)

type downProjects struct{}

func (downProjects) List(context.Context) ([]models.Project, error) {
	return nil, errors.New("dial tcp: connection refused")
}
func (downProjects) Get(context.Context, int64) (models.Project, error) {
	return models.Project{}, errors.New("dial tcp: connection refused")
}
func (downProjects) Create(context.Context, models.NewProject) (models.Project, error) {
	return models.Project{}, errors.New("dial tcp: connection refused")
}
func (downProjects) Count(context.Context) (int64, error) { return 0, errors.New("down") }

type downMessages struct{}

func (downMessages) List(context.Context) ([]models.ContactMessage, error) {
	return nil, errors.New("down")
}
func (downMessages) Get(context.Context, int64) (models.ContactMessage, error) {
	return models.ContactMessage{}, errors.New("down")
}
func (downMessages) Create(context.Context, models.NewContactMessage) (models.ContactMessage, error) {
	return models.ContactMessage{}, errors.New("down")
}
func (downMessages) MarkRead(context.Context, int64) (models.ContactMessage, error) {
	return models.ContactMessage{}, errors.New("down")
}

func newDownRouter(buf *bytes.Buffer) http.Handler {
	log := logger.NewWithWriter("dev", buf)
	ph := NewProjectHandler(services.NewProjectService(downProjects{}, log), log)
	ch := NewContactHandler(services.NewContactService(downMessages{}, nil, nil, log), log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Get("/projects", ph.List)
	r.Get("/projects/{id}", ph.Get)
	r.Post("/projects", ph.Create)
	r.Get("/contact", ch.List)
	r.Post("/contact", ch.Submit)
	r.Patch("/contact/{id}/read", ch.MarkRead)
	return r
}

func TestInfrastructureErrorsAreGeneric500(t *testing.T) {
	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/projects", ""},
		{http.MethodGet, "/projects/1", ""},
		{http.MethodPost, "/projects", `{"title":"t","description":"d","githubUrl":"g"}`},
		{http.MethodGet, "/contact", ""},
		{http.MethodPost, "/contact", `{"name":"Ann","email":"ann@x.com","message":"hi"}`},
		{http.MethodPatch, "/contact/1/read", ""},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var buf bytes.Buffer
			h := newDownRouter(&buf)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"Internal server error","code":"internal_error"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "down")
			assert.Contains(t, buf.String(), "request_id=req-42")
		})
	}
}

func TestValidationRunsBeforeStore(t *testing.T) {
	var buf bytes.Buffer
	h := newDownRouter(&buf)

	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(`{"title":"t"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"description"`)
	assert.Contains(t, rec.Body.String(), `"field":"githubUrl"`)
}

func TestOversizedBody(t *testing.T) {
	var buf bytes.Buffer
	h := newDownRouter(&buf)

	body := `{"name":"Ann","email":"ann@x.com","message":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}
