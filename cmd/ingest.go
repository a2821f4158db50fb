package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/Kavishdk/Customer-support-chatbot/internal/app"
	"github.com/Kavishdk/Customer-support-chatbot/internal/config"
)

// runIngest replaces the knowledge base contents with the built-in FAQ
// corpus. Embedding each document is paced to stay within provider rate
// limits, so a full run takes a few seconds.
func runIngest() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err = cfg.ValidateServe(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()

	a, err := app.Setup(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("shutdown error", "error", closeErr)
		}
	}()

	logger.Info("seeding knowledge base")
	count, err := a.Seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding knowledge base: %w", err)
	}

	fmt.Printf("Ingestion complete: %d documents\n", count)
	return nil
}
