package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"travelnews/internal/app"
	"travelnews/internal/config"
	"travelnews/internal/logging"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()
	cfg := config.Load()

	logger, closeLogs, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		_ = closeLogs()
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		_ = closeLogs()
		os.Exit(1)
	}

	_ = closeLogs()
}
