package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sports-data-service/internal/config"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/server"
)

const (
	appName    = "sports-data-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	srv.Run(ctx, stop)
	return nil
}
