// Package preview serves an interactive page for trying page components
// against the site configuration, reloading it when the file changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/middleware"
	"github.com/taigram/docs-theme/internal/rendering"
	"github.com/taigram/docs-theme/internal/stylesheet"
)

const shutdownTimeout = 10 * time.Second

// Dependencies holds the services the preview server needs.
type Dependencies struct {
	Site      *SiteSource
	Renderer  rendering.Renderer
	Sheet     *stylesheet.Sheet
	Component component.Renderable
	StaticDir string
}

// Server is the preview HTTP server.
type Server struct {
	E    *echo.Echo
	deps Dependencies
}

// New creates the preview server and registers its routes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := prometheus.NewRegistry()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "preview",
		Registerer: metrics,
	}))

	setupErrorHandling(e)

	s := &Server{E: e, deps: deps}
	s.registerRoutes(metrics)
	return s
}

func (s *Server) registerRoutes(metrics *prometheus.Registry) {
	s.E.GET("/", s.index)
	s.E.GET("/fragment", s.fragment, middleware.RateLimiter(20, 40))
	s.E.GET("/index.css", s.stylesheet)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: metrics}))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if s.deps.StaticDir != "" {
		s.E.Static("/static", s.deps.StaticDir)
	}
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", "addr", addr, "config", s.deps.Site.Path())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("Shutting down preview server")
	return s.E.Shutdown(shutdownCtx)
}
