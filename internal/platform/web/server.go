// Package web streams simulation snapshots and events to browsers over a
// websocket and feeds their commands back into the simulation.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the number of simulation frames per second.
	TickRate int

	// SnapshotRate is how many idle snapshots are sent per second.
	// Commands and events always trigger a snapshot on the next frame.
	SnapshotRate int

	// Seed seeds every session. Zero seeds from the clock.
	Seed int64

	Keiraku config.KeirakuConfig
	Catalog sim.Catalog
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:      ":8080",
		TickRate:     30,
		SnapshotRate: 10,
		Keiraku:      config.DefaultKeirakuConfig(),
	}
}

// Server serves the websocket feed and the stage catalog.
type Server struct {
	config   Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a web server. A nil logger discards output.
func NewServer(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	if cfg.SnapshotRate <= 0 || cfg.SnapshotRate > cfg.TickRate {
		cfg.SnapshotRate = cfg.TickRate
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = sim.DefaultCatalog()
	}

	s := &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients are served from anywhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes: /ws for play and /stages for the catalog.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/stages", s.serveStages)
	return mux
}

func (s *Server) serveStages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.config.Catalog); err != nil {
		s.logger.Warn("encode stages", "error", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	s.logger.Info("session started", "remote", r.RemoteAddr)
	sess := newSession(conn, s.config, s.logger.With("remote", r.RemoteAddr))
	go sess.writePump()
	go sess.run()
	sess.readPump()
	s.logger.Info("session ended", "remote", r.RemoteAddr)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
