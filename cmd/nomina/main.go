package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nomina/internal/domain/roster"
	"nomina/internal/platform/config"
	"nomina/internal/platform/logging"
	"nomina/internal/platform/metrics"
	"nomina/internal/transport/console"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second signal after the first falls back to the default handler.
	context.AfterFunc(ctx, stop)

	shell := console.New(os.Stdin, os.Stdout, roster.NewService(roster.NewMemoryStore()), metrics.New(), logger, console.Options{
		Language:       cfg.LanguageTag(),
		CurrencySymbol: cfg.CurrencySymbol,
		ClearLines:     cfg.ClearLines,
		Pause:          cfg.PauseEnabled,
	})

	logger.Debug("session started", zap.String("locale", cfg.Locale))
	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session failed", zap.Error(err))
	}
}
