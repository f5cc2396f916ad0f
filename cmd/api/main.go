package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proclubs-notify/internal/config"
	"proclubs-notify/internal/infra/discord"
	"proclubs-notify/internal/usecase/notify"

	hhttp "proclubs-notify/internal/handler/http"
	"proclubs-notify/internal/handler/http/auth"
	"proclubs-notify/internal/handler/http/release"
	"proclubs-notify/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	gateway := initGateway(logger, cfg)
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Error("failed to close discord session", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, cfg, gateway)
	runServer(logger, cfg, handler)
}

// initLogger initializes a structured JSON logger from LOG_LEVEL.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initGateway creates and opens the Discord bot session. The session must be
// connected before the webhook route starts accepting traffic.
func initGateway(logger *slog.Logger, cfg *config.Config) *discord.Gateway {
	gateway, err := discord.New(cfg.BotToken)
	if err != nil {
		logger.Error("failed to create discord session", slog.Any("error", err))
		os.Exit(1)
	}
	if err := gateway.Open(); err != nil {
		logger.Error("failed to connect to discord", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("discord bot logged in",
		slog.String("username", gateway.BotUsername()))
	return gateway
}

// setupServer wires routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, gateway *discord.Gateway) http.Handler {
	dispatcher := notify.Service{
		Gateway:   gateway,
		ChannelID: cfg.ChannelID,
		Timeout:   cfg.DispatchTimeout,
	}

	mux := http.NewServeMux()
	release.Register(mux, release.Handler{
		Dispatcher: dispatcher,
		ChannelID:  cfg.ChannelID,
		Logger:     logger,
	}, auth.Bearer(cfg.APISecret))
	mux.Handle("/health", &hhttp.HealthHandler{Gateway: gateway})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/", hhttp.NotFoundHandler())

	// Innermost to outermost: metrics → body limit → logging → recover →
	// request ID.
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = requestid.Middleware(handler)

	return handler
}

// runServer starts the HTTP server and blocks until a termination signal,
// then shuts down gracefully.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
