// Package server exposes the simulator as a JSON HTTP API.
// Every request builds its own Scheduler, so handlers share no run-state.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// DefaultMaxProcesses bounds the process set accepted by a single request.
const DefaultMaxProcesses = 10000

// DefaultMaxBodyBytes bounds the size of a request body.
const DefaultMaxBodyBytes = 4 << 20

// DefaultMaxTicks bounds the simulated horizon (latest arrival plus total
// burst) of a single request.
const DefaultMaxTicks = 1_000_000

// Server is the simulator REST API server.
type Server struct {
	router       chi.Router
	logger       logrus.FieldLogger
	startTime    time.Time
	maxProcesses int
	maxBodyBytes int64
	maxTicks     int64
}

// Option configures optional Server limits.
type Option func(*Server)

// WithMaxProcesses caps the number of processes per request.
func WithMaxProcesses(n int) Option {
	return func(s *Server) {
		s.maxProcesses = n
	}
}

// WithMaxTicks caps the simulated horizon per request.
func WithMaxTicks(n int64) Option {
	return func(s *Server) {
		s.maxTicks = n
	}
}

// WithMaxBodyBytes caps the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// New creates a new Server with all routes registered.
func New(logger logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		logger:       logger.WithField("component", "server"),
		startTime:    time.Now(),
		maxProcesses: DefaultMaxProcesses,
		maxBodyBytes: DefaultMaxBodyBytes,
		maxTicks:     DefaultMaxTicks,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/simulate", s.handleSimulate)
		r.Post("/compare", s.handleCompare)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
