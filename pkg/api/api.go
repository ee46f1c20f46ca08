// Package api exposes the catalog over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/herodex/herodex/pkg/config"
	"github.com/herodex/herodex/pkg/logging"
	"github.com/herodex/herodex/pkg/metrics"
	"github.com/herodex/herodex/pkg/query"
)

// Server serves the catalog API over HTTP.
type Server struct {
	engine     *query.Engine
	cfg        config.Config
	httpServer *http.Server
	metrics    *metrics.Metrics
	log        *slog.Logger
	startTime  time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics sets the metrics registry used by the instrumentation
// middleware and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// New creates a Server over the given query engine.
func New(engine *query.Engine, cfg config.Config, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		cfg:       cfg,
		log:       logging.Nop(),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(cfg.MetricsCollectors)
	}
	s.metrics.SetCatalogSize(engine.Size())
	return s
}

// Handler builds the full handler chain: routes wrapped in recovery,
// request-ID, logging, metrics and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	var handler http.Handler = mux
	handler = s.corsMiddleware(handler)
	handler = s.metricsMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	handler = s.requestIDMiddleware(handler)
	handler = s.recoverMiddleware(handler)
	return handler
}

// Start begins listening and blocks until the server stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("server listening", "port", s.cfg.Port, "records", s.engine.Size())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info("shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Uptime returns how long the server has been running.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}
