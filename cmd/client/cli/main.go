package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jaykumar/jobportal-cli/internal/client/cli"
	"github.com/jaykumar/jobportal-cli/internal/client/config"
	"github.com/jaykumar/jobportal-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Root(context.Background())
}
