package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/config"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nfl-prediction-tracker",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
