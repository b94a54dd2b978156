package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/rjs-config-gen/internal/config"
	"github.com/MKhiriev/rjs-config-gen/internal/handler"
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
)

type server struct {
	httpServer *httpServer
	hooks      []ShutdownHook

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...ShutdownHook) (Server, error) {
	return newServer(handlers, cfg, logger, hooks...)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...ShutdownHook) (*server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		hooks:      hooks,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}
	return s.serve(context.Background())
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		s.httpServer.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), s.httpServer.shutdownTimeout)
		defer cancel()

		for _, hook := range s.hooks {
			if err := hook(ctx); err != nil {
				s.logger.Err(err).Msg("shutdown hook failed")
			}
		}
	})
}

// serve runs the bound listener until ctx is done or a stop signal
// arrives, then shuts the server down.
func (s *server) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			s.Shutdown()
			return err
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
