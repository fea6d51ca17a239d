package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every non-2xx response and of acknowledgements
// that carry no record.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	ID      *int64 `json:"id,omitempty"`
}

const (
	CodeBadRequest  = "bad_request"
	CodeValidation  = "validation_failed"
	CodeNotFound    = "not_found"
	CodeRateLimited = "rate_limited"
	CodeInternal    = "internal_error"
)

const MsgInternal = "Internal server error"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details any) {
	WriteJSON(w, status, Envelope{
		Success: false,
		Message: msg,
		Code:    code,
		Errors:  details,
	})
}

func WriteInternal(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, CodeInternal, MsgInternal, nil)
}

// DecodeJSON reads a single JSON value from the body, capped at maxBytes.
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}
