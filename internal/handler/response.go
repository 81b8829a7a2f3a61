package handler

// RESPONSE HELPERS:
// These standardise how handlers send JSON and errors. Every error response
// has the same shape:
//
//	{"error": "not_found", "message": "session not found with id 7"}
//
// so the frontend always knows what fields to expect, whatever the status.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/feature-workshop/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "not_found")
	Message string `json:"message"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code. Headers and
// status MUST be set before the body — once Encode writes, they are sent.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already went out; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to an HTTP status and sends it. This is
// the only place that translation happens — the service layer never sees a
// status code.
//
// errors.Is() walks the chain (via Unwrap), so wrapping at layer boundaries
// with %w doesn't hide the sentinel.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrIntegrity):
			// Store-level corruption is our fault, not the caller's.
			errorType = "integrity_error"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	// Unknown error — generic 500. Never leak raw internals (SQL, paths)
	// to the client.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// pathID extracts and parses the {name} URL parameter as an entity id.
// A missing or non-integer value is a validation error (400), not a 404 —
// "/api/products/abc" is a malformed request, not a missing product.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ValidationFailed(name, "invalid "+name+" in URL")
	}
	return id, nil
}
