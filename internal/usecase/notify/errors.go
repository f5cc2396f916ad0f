package notify

import "errors"

// Sentinel errors for dispatch failures. The webhook handler translates
// each of these into a distinct HTTP 500 message.
var (
	// ErrChannelNotFound indicates the destination channel does not exist
	// or the bot has lost access to it.
	ErrChannelNotFound = errors.New("discord channel not found or bot lacks access")

	// ErrPermissionDenied indicates the bot is in the channel but lacks
	// permission to send messages there.
	ErrPermissionDenied = errors.New("bot lacks permission to send messages in the channel")

	// ErrDispatchTimeout indicates the gateway call did not complete within
	// the configured dispatch timeout.
	ErrDispatchTimeout = errors.New("notification dispatch timed out")
)
