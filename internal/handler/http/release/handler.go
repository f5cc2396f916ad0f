// Package release implements the player-release webhook endpoint.
// It decodes and validates the inbound payload, hands it to the notification
// dispatcher, and maps every outcome to the documented HTTP responses.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"proclubs-notify/internal/domain/entity"
	"proclubs-notify/internal/handler/http/requestid"
	"proclubs-notify/internal/handler/http/respond"
	"proclubs-notify/internal/usecase/notify"
)

// Dispatcher delivers a validated release event to the destination channel.
type Dispatcher interface {
	DispatchRelease(ctx context.Context, ev *entity.PlayerReleaseEvent) error
}

// Handler handles POST /svincolato.
type Handler struct {
	Dispatcher Dispatcher
	ChannelID  string
	Logger     *slog.Logger
}

type ackData struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	ChannelID string `json:"channelId"`
}

type ackResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    ackData `json:"data"`
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Decode generically so the validator can distinguish absent fields
	// from fields the platform sends as null, "", 0 or false.
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ev, err := entity.ParseReleaseEvent(payload)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.Dispatcher.DispatchRelease(r.Context(), ev); err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	h.logger().Info("release notification sent",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("user_id", ev.UserID),
		slog.String("username", ev.Username),
		slog.String("channel_id", h.ChannelID))

	respond.JSON(w, http.StatusOK, ackResponse{
		Success: true,
		Message: "Player release notification sent successfully",
		Data: ackData{
			UserID:    ev.UserID,
			Username:  ev.Username,
			ChannelID: h.ChannelID,
		},
	})
}

// writeValidationError maps the validator's failure kinds to 400 responses.
func writeValidationError(w http.ResponseWriter, err error) {
	var missing *entity.MissingFieldsError
	if errors.As(err, &missing) {
		respond.JSON(w, http.StatusBadRequest, respond.ErrorBody{
			Error:         http.StatusText(http.StatusBadRequest),
			Message:       "Missing required fields",
			MissingFields: missing.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrInvalidAction):
		respond.Error(w, http.StatusBadRequest,
			"Invalid action. Expected one of: player_released, removed_by_captain, voluntary_leave")
	case errors.Is(err, entity.ErrInvalidTimestamp):
		respond.Error(w, http.StatusBadRequest,
			"Invalid timestamp format. Expected ISO 8601 format")
	default:
		respond.Error(w, http.StatusBadRequest, "Invalid payload")
	}
}

// writeDispatchError maps dispatch failures to 500 responses. Unknown
// failures carry the underlying error message as a details field for
// operator diagnosis; the taxonomy errors have fixed messages.
func (h Handler) writeDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().Error("release notification failed",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("channel_id", h.ChannelID),
		slog.Any("error", err))

	switch {
	case errors.Is(err, notify.ErrChannelNotFound):
		respond.Error(w, http.StatusInternalServerError,
			"Discord channel not found or bot lacks access")
	case errors.Is(err, notify.ErrPermissionDenied):
		respond.Error(w, http.StatusInternalServerError,
			"Bot lacks permission to send messages in the specified channel")
	case errors.Is(err, notify.ErrDispatchTimeout):
		respond.Error(w, http.StatusInternalServerError,
			"Discord notification timed out")
	default:
		respond.JSON(w, http.StatusInternalServerError, respond.ErrorBody{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: "Failed to send Discord notification",
			Details: err.Error(),
		})
	}
}

func (h Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
