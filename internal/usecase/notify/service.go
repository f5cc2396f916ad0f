// Package notify implements the notification dispatch pipeline: it maps a
// validated player-release event to a rich message and delivers it to the
// configured Discord channel through an injected gateway.
//
// The pipeline is strictly linear and performs no retries; a failed dispatch
// is reported synchronously to the webhook caller, who owns retry policy.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proclubs-notify/internal/domain/entity"
)

// Gateway is the messaging-platform session the dispatcher depends on.
// The process owns a single long-lived implementation shared across
// requests; tests substitute a fake.
type Gateway interface {
	// FetchChannel resolves the channel ID to a live channel, returning
	// ErrChannelNotFound (wrapped) if it is deleted or inaccessible.
	FetchChannel(ctx context.Context, channelID string) error

	// Send delivers the message to the channel. Failures surface as
	// ErrChannelNotFound, ErrPermissionDenied, ErrDispatchTimeout, or a
	// wrapped unknown error.
	Send(ctx context.Context, channelID string, msg Message) error
}

// Service dispatches player-release notifications to a fixed channel.
type Service struct {
	Gateway   Gateway
	ChannelID string

	// Timeout bounds the two gateway calls of one dispatch. Zero means
	// no deadline beyond the caller's context.
	Timeout time.Duration

	// Now is the clock used for the embed timestamp; nil means time.Now.
	Now func() time.Time
}

// DispatchRelease formats the event and sends it to the destination channel.
// The channel is fetched first so a vanished channel fails before any send
// attempt is made.
func (s Service) DispatchRelease(ctx context.Context, ev *entity.PlayerReleaseEvent) error {
	recordDispatch()
	start := time.Now()

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	msg := BuildReleaseMessage(ev, now().UTC())

	if err := s.Gateway.FetchChannel(ctx, s.ChannelID); err != nil {
		err = mapDeadline(ctx, err)
		recordResult(resultStatus(err), time.Since(start))
		return fmt.Errorf("fetch channel %s: %w", s.ChannelID, err)
	}

	if err := s.Gateway.Send(ctx, s.ChannelID, msg); err != nil {
		err = mapDeadline(ctx, err)
		recordResult(resultStatus(err), time.Since(start))
		return fmt.Errorf("send to channel %s: %w", s.ChannelID, err)
	}

	recordResult("success", time.Since(start))
	return nil
}

// mapDeadline folds a deadline expiry into the distinct timeout error so
// callers can report a hung gateway separately from other failures.
func mapDeadline(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrDispatchTimeout
	}
	return err
}

// resultStatus maps a dispatch error to its metrics label.
func resultStatus(err error) string {
	switch {
	case errors.Is(err, ErrChannelNotFound):
		return "channel_not_found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrDispatchTimeout):
		return "timeout"
	default:
		return "error"
	}
}
