// Package entity defines the domain entities of the notification service.
// The only entity is the player-release event carried by the inbound webhook;
// it lives for a single request and is never persisted.
package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Recognized values for the action field.
const (
	ActionPlayerReleased   = "player_released"
	ActionRemovedByCaptain = "removed_by_captain"
	ActionVoluntaryLeave   = "voluntary_leave"
)

// RequiredFields lists the webhook payload fields that must be present and
// non-empty, in the order they are reported back to the caller when missing.
var RequiredFields = []string{
	"userId",
	"username",
	"previousTeamId",
	"previousTeamName",
	"timestamp",
	"action",
	"reason",
}

// PlayerReleaseEvent is a validated player-release event.
type PlayerReleaseEvent struct {
	UserID           string
	Username         string
	PreviousTeamID   string
	PreviousTeamName string
	Timestamp        time.Time
	Action           string
	Reason           string
}

// MissingFieldsError reports the required fields that were absent or empty,
// in schema order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ValidationError represents a single-field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ErrInvalidAction and ErrInvalidTimestamp are the two single-field
// validation failures the webhook can produce after the required-field check.
var (
	ErrInvalidAction = &ValidationError{
		Field: "action",
		Message: "invalid action, expected one of: " + ActionPlayerReleased +
			", " + ActionRemovedByCaptain + ", " + ActionVoluntaryLeave,
	}
	ErrInvalidTimestamp = &ValidationError{
		Field:   "timestamp",
		Message: "invalid timestamp format, expected ISO 8601",
	}
)

// ParseReleaseEvent validates a decoded webhook payload and builds the event.
//
// Checks run in a fixed order and the first failure wins:
//  1. every required field must be present and truthy; the platform sends
//     JSON null, empty strings, 0 and false interchangeably with omitting
//     a field, so all of those count as missing
//  2. action must be one of the three recognized values
//  3. timestamp must parse as a calendar instant
//
// The reason field is deliberately unconstrained here: recognized codes get
// a localized description at formatting time, anything else passes through.
func ParseReleaseEvent(payload map[string]any) (*PlayerReleaseEvent, error) {
	var missing []string
	for _, field := range RequiredFields {
		if !truthy(payload[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	action := asString(payload["action"])
	switch action {
	case ActionPlayerReleased, ActionRemovedByCaptain, ActionVoluntaryLeave:
	default:
		return nil, ErrInvalidAction
	}

	ts, err := dateparse.ParseAny(asString(payload["timestamp"]))
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	return &PlayerReleaseEvent{
		UserID:           asString(payload["userId"]),
		Username:         asString(payload["username"]),
		PreviousTeamID:   asString(payload["previousTeamId"]),
		PreviousTeamName: asString(payload["previousTeamName"]),
		Timestamp:        ts,
		Action:           action,
		Reason:           asString(payload["reason"]),
	}, nil
}

// truthy reports whether a decoded JSON value counts as present.
// nil, "", 0 and false are all treated as missing.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

// asString renders a decoded JSON value as a string. The platform nominally
// sends strings for every field, but numeric identifiers have been observed
// in the wild, so numbers are formatted rather than rejected.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
