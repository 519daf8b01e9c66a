// Package server owns the HTTP listener lifecycle for the cloudstub mock:
// binding the configured address, attaching the mock API at the root path,
// and shutting down gracefully. Handler logic lives in pkg/api; this package
// only wires it to the network.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cloudstub/cloudstub/pkg/api"
	"github.com/cloudstub/cloudstub/pkg/config"
	"github.com/cloudstub/cloudstub/pkg/httputil"
	"github.com/cloudstub/cloudstub/pkg/logging"
)

// Server serves the mock platform API over HTTP.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	version    string
	api        *api.API
	httpServer *http.Server

	mu        sync.RWMutex
	running   bool
	startTime time.Time
	addr      string
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithVersion sets the version string reported by the health endpoint.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// New creates a new Server with the given configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		cfg: cfg,
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.api = api.New(api.WithLogger(s.log))
	return s
}

// Handler builds the root handler: the mock API routes plus the health
// endpoint, wrapped with access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.api.Register(mux)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.accessLog(mux)
}

// Start binds the configured address and begins serving in the background.
// It returns once the listener is bound.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.running = true
	s.startTime = time.Now()
	s.addr = listener.Addr().String()
	s.mu.Unlock()

	s.log.Info("mock platform API listening", "addr", s.addr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("serve failed", "error", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests up
// to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	srv := s.httpServer
	s.mu.Unlock()

	return srv.Shutdown(ctx)
}

// IsRunning reports whether the server is currently serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Uptime returns seconds since Start.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  int    `json:"uptime"`
	Version string `json:"version,omitempty"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status:  "ok",
		Uptime:  s.Uptime(),
		Version: s.version,
	})
}
