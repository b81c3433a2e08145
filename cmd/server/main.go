package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"football-player-service/internal/config"
	"football-player-service/internal/logging"
	"football-player-service/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "football-player-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server startup failed", "error", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
