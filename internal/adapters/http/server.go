package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"formvalidator/internal/config"
	"formvalidator/internal/platform/logger"
)

const defaultShutdownTimeout = 30 * time.Second

type Server struct {
	server          *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration

	mu   sync.Mutex
	addr net.Addr
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	srv := cfg.Server

	drain := seconds(srv.ShutdownTimeout)
	if drain <= 0 {
		drain = defaultShutdownTimeout
	}

	return &Server{
		server: &http.Server{
			Addr:              srv.Addr(),
			Handler:           handler,
			ReadTimeout:       seconds(srv.ReadTimeout),
			ReadHeaderTimeout: seconds(srv.ReadTimeout),
			WriteTimeout:      seconds(srv.WriteTimeout),
			IdleTimeout:       seconds(srv.IdleTimeout),
		},
		logger:          log,
		shutdownTimeout: drain,
	}
}

// Addr reports the bound listener address once Start has succeeded. It is
// nil before that.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Start binds the listener before returning so a taken port fails startup,
// then serves in the background. A context that is already done releases the
// listener without serving.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("HTTP listener bind failed", logger.String("addr", s.server.Addr), logger.Error(err))
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	if ctx.Err() != nil {
		s.logger.Info("HTTP server start cancelled before serving")
		return ln.Close()
	}

	s.logger.Info("HTTP server listening", logger.String("addr", ln.Addr().String()))
	go s.serve(ln)
	return nil
}

func (s *Server) serve(ln net.Listener) {
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server stopped unexpectedly", logger.Error(err))
	}
}

// Stop drains in-flight requests for at most the configured shutdown timeout
// and closes whatever is still open after that.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("Draining HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP drain incomplete, closing remaining connections", logger.Error(err))
		return errors.Join(err, s.server.Close())
	}
	return nil
}
