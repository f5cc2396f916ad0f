// Package discord implements the notify.Gateway interface on top of a
// bwmarrin/discordgo bot session. One session is opened per process before
// the HTTP listener starts and is shared read-only across requests; the
// session serializes its own outbound calls.
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"proclubs-notify/internal/usecase/notify"
)

// Gateway wraps the long-lived Discord bot session.
type Gateway struct {
	session *discordgo.Session
}

// New creates a gateway from a bot token. The session is configured but not
// yet connected; call Open before serving traffic.
func New(botToken string) (*Gateway, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	return &Gateway{session: session}, nil
}

// Open establishes the websocket connection and logs the bot in.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

// Close gracefully closes the websocket connection.
func (g *Gateway) Close() error {
	return g.session.Close()
}

// BotUsername returns the logged-in bot's username, or an empty string
// before the session is ready.
func (g *Gateway) BotUsername() string {
	if g.session.State != nil && g.session.State.User != nil {
		return g.session.State.User.Username
	}
	return ""
}

// Connected reports whether the gateway session has completed its handshake
// and is currently connected. Used by the health endpoint.
func (g *Gateway) Connected() bool {
	return g.session.DataReady
}

// FetchChannel resolves the channel via the REST API. A deleted channel or
// one the bot cannot see maps to notify.ErrChannelNotFound.
func (g *Gateway) FetchChannel(ctx context.Context, channelID string) error {
	_, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	return mapRESTError(err)
}

// Send delivers the message to the channel as an embed with a link button.
func (g *Gateway) Send(ctx context.Context, channelID string, msg notify.Message) error {
	_, err := g.session.ChannelMessageSendComplex(channelID, buildMessageSend(msg), discordgo.WithContext(ctx))
	return mapRESTError(err)
}

// buildMessageSend converts the channel-neutral message into the discordgo
// wire structure.
func buildMessageSend(msg notify.Message) *discordgo.MessageSend {
	fields := make([]*discordgo.MessageEmbedField, 0, len(msg.Fields))
	for _, f := range msg.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:     msg.Title,
		Color:     msg.Color,
		Fields:    fields,
		Footer:    &discordgo.MessageEmbedFooter{Text: msg.Footer},
		Timestamp: msg.Timestamp.Format(time.RFC3339),
	}

	send := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if msg.Button.URL != "" {
		send.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label: msg.Button.Label,
						Style: discordgo.LinkButton,
						URL:   msg.Button.URL,
					},
				},
			},
		}
	}

	return send
}

// mapRESTError translates Discord REST failures into the dispatch error
// taxonomy. Unknown-channel (10003) and missing-access (50001) both mean the
// destination is gone from the bot's point of view; missing-permissions
// (50013) means the bot can see the channel but not post in it. Everything
// else stays wrapped as an unknown failure.
func mapRESTError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return notify.ErrDispatchTimeout
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeMissingAccess:
			return fmt.Errorf("%w: %s", notify.ErrChannelNotFound, restErr.Message.Message)
		case discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%w: %s", notify.ErrPermissionDenied, restErr.Message.Message)
		}
	}

	return fmt.Errorf("discord api: %w", err)
}
