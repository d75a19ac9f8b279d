package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

// New - echo instance with the inspection routes and the metrics endpoint mounted.
func New(logger *slog.Logger, simulation simulationUseCase, metrics http.Handler) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Error("request failed", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}

			log.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	NewHandlers(logger, simulation).Register(e)
	e.GET("/metrics", echo.WrapHandler(metrics))

	return &Server{logger: log, echo: e}
}

// Start - serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	that.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// ServeHTTP - lets tests drive the router without a listener.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.echo.ServeHTTP(w, r)
}
