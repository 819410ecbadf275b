package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sms-location-webhook/internal/api"
	"sms-location-webhook/internal/config"
	"sms-location-webhook/internal/db"
	"sms-location-webhook/internal/publisher"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Warn("Unknown LOG_LEVEL, using info", "value", cfg.LogLevel)
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.InfoContext(ctx, "Starting service...")

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		Password:       cfg.DatabasePassword,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Database init failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	apiCfg := api.Config{
		DB:         database,
		AuthToken:  cfg.TwilioAuthToken,
		WebhookURL: cfg.WebhookURL,
	}
	if cfg.TwilioAuthToken == "" {
		slog.WarnContext(ctx, "TWILIO_AUTH_TOKEN not set, webhook signatures are not verified")
	}

	var pub *publisher.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		pub = publisher.New(publisher.Config{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			Timeout: cfg.PublishTimeout,
		})
		apiCfg.Publisher = pub
		slog.InfoContext(ctx, "Publishing device locations", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           api.New(apiCfg).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "port", cfg.Port, "webhook", api.WebhookPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "HTTP server shutdown error", "error", err)
	}

	// In-flight webhooks have finished, nothing else will publish.
	if pub != nil {
		pub.Close(shutdownCtx)
	}

	slog.Info("Service stopped")
	if exitCode != 0 {
		database.Close()
		os.Exit(exitCode)
	}
}
