// Package main is the entry point for the farmdesk API server.
//
// It loads configuration, builds the agronomy table and the farm services,
// wires them into the core HTTP chassis and serves until SIGINT or SIGTERM.
// Crops and fields live in PostgreSQL when DATABASE_URL is set and in memory,
// seeded with the sample farm, otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/api/handlers"
	"farmdesk/internal/config"
	"farmdesk/internal/core"
	"farmdesk/internal/db"
	"farmdesk/internal/farm"
	"farmdesk/internal/prediction"
	"farmdesk/internal/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(nil)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("farmdesk API starting",
		"environment", cfg.Environment,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
		"agronomy_table", cfg.Build.TableSource,
		"port", cfg.Server.Port,
		"database", cfg.Database.Enabled(),
	)

	srv, err := buildServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return serve(ctx, srv, cfg, logger)
}

// repositories pairs the crop and field stores selected at startup.
type repositories struct {
	crops  types.CropRepository
	fields types.FieldRepository
}

// buildServer wires storage, services and handlers into a mounted server.
func buildServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*core.Server, error) {
	table, err := agronomy.LoadTable(cfg.Agronomy.TablePath)
	if err != nil {
		return nil, fmt.Errorf("loading agronomy table: %w", err)
	}

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	repos, err := openRepositories(ctx, cfg, srv, logger)
	if err != nil {
		return nil, err
	}

	history, err := farm.NewHistoryService(logger, farm.SampleSeasons()...)
	if err != nil {
		return nil, fmt.Errorf("seeding season history: %w", err)
	}
	diseases, err := farm.NewDiseaseLibrary(farm.SampleDiseases()...)
	if err != nil {
		return nil, fmt.Errorf("loading disease library: %w", err)
	}

	clock := types.RealClock{}
	crops := farm.NewCropService(repos.crops, clock, logger)
	fields := farm.NewFieldService(repos.fields, clock, logger)
	weather := farm.NewWeatherService(farm.SampleWeather()...)
	dashboard := farm.NewDashboardService(crops, fields, history, weather)
	engine := prediction.NewEngine(table)

	srv.V1RouteRegistrars = append(srv.V1RouteRegistrars,
		handlers.NewCatalogHandler().RegisterRoutes,
		handlers.NewPredictionHandler(engine, cfg.Agronomy.CurrencySymbol).RegisterRoutes,
		handlers.NewCropHandler(crops, srv.Validator, logger).RegisterRoutes,
		handlers.NewFieldHandler(fields, logger).RegisterRoutes,
		handlers.NewHistoryHandler(history, srv.Validator, logger).RegisterRoutes,
		handlers.NewDiseaseHandler(diseases).RegisterRoutes,
		handlers.NewWeatherHandler(weather).RegisterRoutes,
		handlers.NewDashboardHandler(dashboard).RegisterRoutes,
	)

	srv.MountRoutes()
	return srv, nil
}

// openRepositories connects to PostgreSQL when configured. The pool is
// registered as a health probe and closed on server shutdown.
func openRepositories(ctx context.Context, cfg *config.Config, srv *core.Server, logger *slog.Logger) (repositories, error) {
	if !cfg.Database.Enabled() {
		crops, err := farm.NewMemoryCropRepository(farm.SampleCrops()...)
		if err != nil {
			return repositories{}, fmt.Errorf("seeding crops: %w", err)
		}
		fields, err := farm.NewMemoryFieldRepository(farm.SampleFields()...)
		if err != nil {
			return repositories{}, fmt.Errorf("seeding fields: %w", err)
		}
		logger.Info("using in-memory store with sample farm data")
		return repositories{crops: crops, fields: fields}, nil
	}

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return repositories{}, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return repositories{}, fmt.Errorf("preparing schema: %w", err)
	}

	srv.HealthProbes = append(srv.HealthProbes, db.NewPoolProbe(pool))
	srv.OnShutdown(func() error {
		pool.Close()
		return nil
	})
	logger.Info("connected to database", "max_conns", cfg.Database.MaxConns)

	return repositories{
		crops:  db.NewCropRepository(pool),
		fields: db.NewFieldRepository(pool),
	}, nil
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests and releases server resources within the shutdown timeout.
func serve(ctx context.Context, srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured JSON logger for the given level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
