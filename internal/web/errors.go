package web

// errors.go provides unified error response handling for the web layer.
//
// Every failed request goes through respondError, which logs the technical
// error with its request ID and returns a JSON body shaped by
// core.MapError: a user-facing message, an optional suggested action, and
// a support code. Validation findings never pass through here; they are
// ordinary response data.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/validador-matrices/api/internal/core"
	"github.com/validador-matrices/api/internal/store"
)

// errRateLimited feeds the RATE001 mapping from the rate limit middleware.
var errRateLimited = errors.New("rate limit exceeded")

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error and writes the mapped user-facing
// JSON response with the given status.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", chimw.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// statusForError picks the HTTP status for a service error. Expired and
// unknown download tokens are distinguishable on purpose: an expired link
// once worked, an unknown one never did.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrExpired):
		return http.StatusGone
	case errors.Is(err, core.ErrTooManyValidations):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
