package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"proclubs-notify/internal/usecase/notify"
)

func restError(code int, message string) *discordgo.RESTError {
	return &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: code, Message: message},
	}
}

func TestMapRESTError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "unknown channel maps to channel not found",
			err:  restError(discordgo.ErrCodeUnknownChannel, "Unknown Channel"),
			want: notify.ErrChannelNotFound,
		},
		{
			name: "missing access maps to channel not found",
			err:  restError(discordgo.ErrCodeMissingAccess, "Missing Access"),
			want: notify.ErrChannelNotFound,
		},
		{
			name: "missing permissions maps to permission denied",
			err:  restError(discordgo.ErrCodeMissingPermissions, "Missing Permissions"),
			want: notify.ErrPermissionDenied,
		},
		{
			name: "deadline expiry maps to dispatch timeout",
			err:  fmt.Errorf("request aborted: %w", context.DeadlineExceeded),
			want: notify.ErrDispatchTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapRESTError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("mapRESTError() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("mapRESTError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapRESTError_UnknownFailureStaysWrapped(t *testing.T) {
	cause := restError(discordgo.ErrCodeCannotSendEmptyMessage, "Cannot send an empty message")

	got := mapRESTError(cause)
	if got == nil {
		t.Fatal("mapRESTError() = nil, want error")
	}
	if errors.Is(got, notify.ErrChannelNotFound) || errors.Is(got, notify.ErrPermissionDenied) {
		t.Fatalf("unrelated API error was misclassified: %v", got)
	}

	var restErr *discordgo.RESTError
	if !errors.As(got, &restErr) {
		t.Fatalf("wrapped error lost the underlying RESTError: %v", got)
	}
}

func TestBuildMessageSend(t *testing.T) {
	now := time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)
	msg := notify.Message{
		Title: "🆓 Giocatore svincolato!",
		Color: 0x00FF00,
		Fields: []notify.Field{
			{Name: "👤 Giocatore", Value: "Mario", Inline: true},
			{Name: "🏟️ Ex Team", Value: "Rossi FC", Inline: true},
			{Name: "📄 Motivo", Value: "injury", Inline: false},
			{Name: "📅 Data", Value: "15/01/2024 10:30", Inline: true},
		},
		Button: notify.Button{
			Label: "Visualizza giocatore",
			URL:   "https://app.ultimateproclubs.com/player/u1",
		},
		Footer:    "Ultimate Pro Clubs",
		Timestamp: now,
	}

	send := buildMessageSend(msg)

	if len(send.Embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(send.Embeds))
	}
	embed := send.Embeds[0]
	if embed.Title != msg.Title {
		t.Errorf("title = %q, want %q", embed.Title, msg.Title)
	}
	if embed.Color != msg.Color {
		t.Errorf("color = %#x, want %#x", embed.Color, msg.Color)
	}
	if embed.Footer == nil || embed.Footer.Text != "Ultimate Pro Clubs" {
		t.Errorf("footer = %+v, want Ultimate Pro Clubs", embed.Footer)
	}
	if embed.Timestamp != "2024-01-15T11:00:00Z" {
		t.Errorf("timestamp = %q, want RFC3339 of now", embed.Timestamp)
	}

	if len(embed.Fields) != 4 {
		t.Fatalf("fields = %d, want 4", len(embed.Fields))
	}
	for i, f := range msg.Fields {
		if embed.Fields[i].Name != f.Name || embed.Fields[i].Value != f.Value || embed.Fields[i].Inline != f.Inline {
			t.Errorf("field %d = %+v, want %+v", i, embed.Fields[i], f)
		}
	}

	if len(send.Components) != 1 {
		t.Fatalf("components = %d, want 1 action row", len(send.Components))
	}
	row, ok := send.Components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("component type = %T, want ActionsRow", send.Components[0])
	}
	if len(row.Components) != 1 {
		t.Fatalf("row components = %d, want 1", len(row.Components))
	}
	button, ok := row.Components[0].(discordgo.Button)
	if !ok {
		t.Fatalf("row component type = %T, want Button", row.Components[0])
	}
	if button.Style != discordgo.LinkButton {
		t.Errorf("button style = %v, want LinkButton", button.Style)
	}
	if button.Label != "Visualizza giocatore" {
		t.Errorf("button label = %q", button.Label)
	}
	if button.URL != "https://app.ultimateproclubs.com/player/u1" {
		t.Errorf("button url = %q", button.URL)
	}
}

func TestBuildMessageSend_NoButtonWithoutURL(t *testing.T) {
	send := buildMessageSend(notify.Message{Title: "t", Timestamp: time.Now()})
	if len(send.Components) != 0 {
		t.Errorf("components = %d, want 0 when no button URL is set", len(send.Components))
	}
}
