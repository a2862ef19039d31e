// Package server serves the test report over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultListen   = "127.0.0.1:8080"
	shutdownTimeout = 5 * time.Second
)

// Config configures the HTTP server.
type Config struct {
	// Listen is the TCP address to bind.
	Listen string `mapstructure:"listen"`

	// CORSOrigins lists allowed origins. Empty allows any origin.
	CORSOrigins []string `mapstructure:"cors-origins"`

	// Version is reported in the JSON output.
	Version string `mapstructure:"-"`
}

// Server serves the HTML, JSON and YAML renderings of the report.
type Server struct {
	cfg        Config
	log        *log.Logger
	httpServer *http.Server
	addr       net.Addr
	wg         sync.WaitGroup
}

// New creates a server. It does not bind until Start.
func New(cfg Config, logger *log.Logger) *Server {
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, log: logger}
}

// Handler returns the router without starting a listener.
func (s *Server) Handler() http.Handler {
	return s.buildRouter()
}

// Start binds the listener synchronously, so port conflicts fail fast,
// and serves in the background until Stop.
func (s *Server) Start(_ context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}
	s.addr = ln.Addr()

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.log.Info("report server starting", "listen", s.addr.String())

		if err := s.httpServer.Serve(ln); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			s.log.Error("HTTP server error", "err", err)
		}
	}()

	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	s.log.Info("report server stopped")
	return nil
}
