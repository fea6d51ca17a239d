package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/middleware"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

const maxBodyBytes = 64 << 10

const (
	msgInvalidBody = "Invalid request body"
	msgValidation  = "Validation failed"
)

// pathID parses the {id} route parameter as a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeServiceError maps the error taxonomy onto HTTP: field errors are 400,
// missing records 404 and everything else a logged 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, notFoundMsg string, err error) {
	var fields validate.Errs
	switch {
	case errors.As(err, &fields):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation, msgValidation, fields)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, notFoundMsg, nil)
	default:
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
			"err", err,
		)
		httpx.WriteInternal(w)
	}
}
