// Package server hosts the browser-facing catalog application. Write
// handlers follow the post/redirect/get pattern: every mutation redirects to
// the results route with an outcome token, and the results page renders the
// matching message.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"discograph/internal/catalog"
	"discograph/internal/config"
	"discograph/internal/logging"
)

// Server owns the HTTP listener and enforces single-instance execution
// through a lock file next to the database.
type Server struct {
	cfg    *config.Config
	store  *catalog.Store
	logger *slog.Logger

	handler  http.Handler
	server   *http.Server
	listener net.Listener
	lock     *flock.Flock
}

// New wires the routes but does not listen yet.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if store == nil {
		return nil, errors.New("nil store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		cfg:    cfg,
		store:  store,
		logger: logging.WithComponent(logger, "server"),
		lock:   flock.New(cfg.LockPath()),
	}
	srv.handler = srv.withRequestLog(srv.routes())
	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr reports the bound listen address, empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start acquires the instance lock, binds the configured address, and serves
// until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another instance is already running (lock %s)", s.lock.Path())
	}

	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen %s: %w", s.cfg.Paths.Bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("listening",
		logging.String("address", listener.Addr().String()),
		logging.String("database", s.store.Path()))
	return nil
}

// Stop shuts the server down and releases the instance lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
}
