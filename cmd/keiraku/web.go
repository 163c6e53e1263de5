package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keiraku-bomber/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket feed",
	Long: `Start an HTTP server for browser front ends.

Routes:
  GET /stages  - The stage catalog as JSON
  /ws          - Websocket: send {"type":"start","mode":"story","stage":"heart"},
                 then {"type":"command","action":"move_up"}; receive
                 snapshot, event and error messages.

Examples:
  keiraku web
  keiraku web --addr 127.0.0.1:9000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Keiraku = appConfig
	cfg.Catalog = appCatalog

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.NewServer(cfg, logger.WithPrefix("keiraku-web")).ListenAndServe(ctx)
}
