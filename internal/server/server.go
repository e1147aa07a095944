package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// Server runs the HTTP API and, when enabled, the daily job scheduler
type Server struct {
	container *Container
	echo      *echo.Echo
	http      *http.Server
	scheduler *services.JobScheduler
}

// New builds the server. The scheduler is created only when jobs are enabled.
func New(c *Container) *Server {
	e := NewRouter(c, RouterOptions{})
	cfg := c.Config.Server

	s := &Server{
		container: c,
		echo:      e,
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:      e,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
	if c.Config.Jobs.Enabled {
		s.scheduler = c.Scheduler()
	}
	return s
}

// Run serves until ctx is canceled, then drains in-flight requests within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	logger := s.container.Logger

	if s.scheduler != nil {
		s.scheduler.Start(ctx)
		defer s.scheduler.Stop()
		logger.Info("Job scheduler started",
			"run_hour", s.scheduler.RunHour,
			"check_interval", s.scheduler.CheckInterval.String(),
			"timezone", s.scheduler.Location.String())
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", s.http.Addr, "environment", s.container.Config.Server.Environment)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	timeout := s.container.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
