package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"boatmatch/internal/application"
	"boatmatch/internal/config"
	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogFormat, cfg.App.LogLevel).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1)
	}

	log.Info("application stopped")
}
