// Package core provides the HTTP chassis for the farmdesk API. It builds a chi
// router, applies the cross-cutting middleware (recovery, timeouts, request
// IDs, security headers, logging, CORS, compression) and renders the JSON
// envelopes every handler shares.
package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/config"
)

// RouteRegistrar mounts a group of handlers under /v1. Handler packages expose
// their RegisterRoutes method as a RouteRegistrar so core never imports them.
type RouteRegistrar func(r chi.Router)

// Server encapsulates all dependencies of the API router.
type Server struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *Validator

	// HealthProbes are checked by GET /health.
	HealthProbes []HealthProbe

	// V1RouteRegistrars are invoked by MountRoutes inside the /v1 group.
	V1RouteRegistrars []RouteRegistrar

	closers []func() error
	router  *chi.Mux
}

// NewServer validates its inputs and prepares an empty router. Routes are
// mounted separately by MountRoutes so tests can customise registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(logger),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// OnShutdown registers fn to run during Shutdown, in registration order.
func (s *Server) OnShutdown(fn func() error) {
	s.closers = append(s.closers, fn)
}

// Shutdown releases resources registered with OnShutdown. Every closer runs
// even when an earlier one fails; the failures are joined.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.InfoContext(ctx, "server shutdown initiated")

	var errs []error
	for _, fn := range s.closers {
		if err := fn(); err != nil {
			s.Logger.ErrorContext(ctx, "error releasing server resource", "error", err)
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("releasing server resources: %w", err)
	}

	s.Logger.InfoContext(ctx, "server shutdown complete")
	return nil
}
