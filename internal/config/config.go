// Package config loads the process configuration from environment variables.
// All required values are validated once at startup; the process refuses to
// start without them.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the immutable process configuration, constructed once in main
// and passed explicitly to the components that need it.
type Config struct {
	// BotToken is the Discord bot session credential.
	BotToken string `env:"BOT_TOKEN,required"`

	// ChannelID is the fixed destination channel for release notifications.
	ChannelID string `env:"DISCORD_CHANNEL_ID,required"`

	// APISecret is the shared bearer secret protecting the webhook endpoint.
	APISecret string `env:"API_SECRET,required"`

	// Port is the HTTP listen port; the server binds all interfaces.
	Port int `env:"PORT" envDefault:"3000"`

	// DispatchTimeout bounds each outbound Discord dispatch.
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"10s"`

	// LogLevel selects the slog level ("debug" enables debug logging).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses and validates the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// The platform has been seen exporting the secret with a trailing
	// newline; tokens are trimmed on both ends of the comparison.
	cfg.APISecret = strings.TrimSpace(cfg.APISecret)
	if cfg.APISecret == "" {
		return nil, fmt.Errorf("API_SECRET must not be blank")
	}
	if strings.TrimSpace(cfg.BotToken) == "" {
		return nil, fmt.Errorf("BOT_TOKEN must not be blank")
	}
	if strings.TrimSpace(cfg.ChannelID) == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID must not be blank")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.DispatchTimeout <= 0 {
		return nil, fmt.Errorf("DISPATCH_TIMEOUT must be positive, got %s", cfg.DispatchTimeout)
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
