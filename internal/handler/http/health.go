// Package http provides the HTTP handlers and middleware of the webhook
// service: the health endpoint, the not-found fallback, request logging,
// panic recovery, body limits and Prometheus metrics.
package http

import (
	"net/http"
	"time"

	"proclubs-notify/internal/handler/http/respond"
)

// ConnectionReporter reports whether the messaging gateway session is
// currently connected. Satisfied by the Discord gateway.
type ConnectionReporter interface {
	Connected() bool
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	BotStatus string `json:"botStatus"`
}

// HealthHandler reports service liveness and the gateway connection state.
// It always returns 200: a disconnected bot is surfaced in botStatus for
// operators but does not fail the probe, since the HTTP surface itself is up.
type HealthHandler struct {
	Gateway ConnectionReporter
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	botStatus := "Disconnected"
	if h.Gateway != nil && h.Gateway.Connected() {
		botStatus = "Connected"
	}

	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Webhook service is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		BotStatus: botStatus,
	})
}

// NotFoundHandler answers every unmatched route with a structured 404 body.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Route not found")
	})
}
