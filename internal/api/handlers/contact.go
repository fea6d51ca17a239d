package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/services"
)

type ContactHandler struct {
	Svc *services.ContactService
	Log *slog.Logger
}

func NewContactHandler(svc *services.ContactService, log *slog.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Log: log}
}

// Submit answers with an acknowledgement rather than the stored record.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validate.ContactInput
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, msgInvalidBody, nil)
		return
	}
	m, err := h.Svc.Submit(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.Log, "", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, httpx.Envelope{
		Success: true,
		Message: "Message received successfully",
		ID:      &m.ID,
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, "", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid message ID", nil)
		return
	}
	m, err := h.Svc.MarkRead(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.Log, "Message not found", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}
