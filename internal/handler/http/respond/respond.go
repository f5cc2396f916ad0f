// Package respond provides utilities for sending HTTP responses in JSON format.
// Error responses carry a stable category string derived from the HTTP status
// text so callers can branch on it without parsing the human-readable message.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
	Details       string   `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response. The "error" field is the standard
// status text for the code (e.g. "Unauthorized", "Bad Request") and the
// message is a human-readable explanation safe to return to callers.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{Error: http.StatusText(code), Message: message})
}
