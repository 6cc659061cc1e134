package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"scaffold/internal/config"
	"scaffold/internal/platform/logger"
)

const shutdownTimeout = 30 * time.Second

// Server wraps http.Server with lifecycle-hook friendly Start and Stop.
// Start binds the listener synchronously so a bad address fails the hook,
// then serves in the background.
type Server struct {
	server *http.Server
	logger logger.Logger
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		logger: log,
	}
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("Failed to bind HTTP listener",
			logger.String("addr", s.server.Addr), logger.Error(err))
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("HTTP server listening", logger.String("addr", ln.Addr().String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", logger.Error(err))
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
