package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tatsujin/kifu-api/internal/config"
	"github.com/tatsujin/kifu-api/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; environment variables win over defaults either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := config.DefaultFromEnv()

	flag.StringVar(&cfg.Host, "host", cfg.Host, "Bind host")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Listen port")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable verbose request logging")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug traces in analysis responses")
	flag.StringVar(&cfg.RuntimeURL, "runtime-url", cfg.RuntimeURL, "Mahjong runtime sidecar base URL")
	flag.StringVar(&cfg.DetectorURL, "detector-url", cfg.DetectorURL, "Tile detector sidecar base URL")
	flag.StringVar(&cfg.SamplePath, "sample-path", cfg.SamplePath, "Path to the sample kifu document")
	flag.Parse()

	srv := server.New(cfg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	slog.Info("kifu-api starting",
		"host", cfg.Host,
		"port", cfg.Port,
		"runtime_url", cfg.RuntimeURL,
		"detector_configured", cfg.DetectorURL != "",
	)
	if err := srv.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
		slog.Error("server error", "error", err)
		return 1
	}
	return 0
}
