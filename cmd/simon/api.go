package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/platform/web"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagHTTPAddr    string
	flagMaxSessions int
	flagSessionTTL  int
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	Long: `Start an HTTP server that runs games for remote clients.

Each game's clock only moves when the client posts a tick, so clients
drive playback at their own pace.

Endpoints:
  GET    /health
  GET    /levels
  POST   /games                {"level":1,"seed":0,"player":""}
  GET    /games/{id}
  POST   /games/{id}/start     {"level":1}
  POST   /games/{id}/press     {"color":"red"}
  POST   /games/{id}/tick      {"elapsed_ms":100}
  DELETE /games/{id}

Examples:
  simon api
  simon api --http :9000 --max-sessions 100`,
	Args: cobra.NoArgs,
	Run:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
	apiCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 1024, "Maximum live games (0 = unlimited)")
	apiCmd.Flags().IntVar(&flagSessionTTL, "session-ttl", 30, "Minutes before an idle game is dropped (0 = never)")
}

func runAPI(_ *cobra.Command, _ []string) {
	simonCfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings, err := simonCfg.ToSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultConfig()
	cfg.MaxSessions = flagMaxSessions
	cfg.SessionTTL = time.Duration(flagSessionTTL) * time.Minute

	server := web.NewServer(settings, store, cfg, logger.WithPrefix("simon-http"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, flagHTTPAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
