package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SimaxBen/wadrari/wadrari"
	"github.com/SimaxBen/wadrari/wadrari/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := wadrari.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Starting Wadrari",
		slog.String("version", version),
		slog.String("commit", commit))

	app := wadrari.New(*cfg, version, commit)

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	if err := app.Setup(setupCtx); err != nil {
		slog.Error("Setup failed", slog.Any("error", err))
		app.Close()
		os.Exit(-1)
	}
	slog.Info("Backend connected",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(start)))

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()
	if err := app.StartRealtime(runCtx); err != nil {
		slog.Error("Realtime listener failed", slog.Any("error", err))
		app.Close()
		os.Exit(-1)
	}

	slog.Info("Wadrari is running. Press Ctrl+C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	stop()
	app.Close()
}
