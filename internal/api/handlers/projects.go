package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/services"
)

type ProjectHandler struct {
	Svc *services.ProjectService
	Log *slog.Logger
}

func NewProjectHandler(svc *services.ProjectService, log *slog.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Log: log}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, "", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid project ID", nil)
		return
	}
	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.Log, "Project not found", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.ProjectInput
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, msgInvalidBody, nil)
		return
	}
	p, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.Log, "", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}
