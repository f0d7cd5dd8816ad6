// Package main is the entry point for the exchange rate lookup service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"xrate/internal/config"
	"xrate/internal/provider"
	"xrate/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	registry   *prometheus.Registry
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	app := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app.initHTTP(app.newRateService())
	return app
}

func (app *App) newRateService() *service.RateService {
	timeout := time.Duration(app.cfg.Feed.TimeoutSec) * time.Second
	fetcher := provider.NewInstrumentedFetcher(provider.NewHTTPFetcher(timeout), app.registry)
	reader := provider.NewRateReader(app.cfg.Feed.BaseURL, fetcher, app.logger)
	app.logger.Infow("Rate feed configured",
		"base_url", app.cfg.Feed.BaseURL,
		"base_currency", provider.BaseCurrency,
		"timeout", timeout)
	return service.NewRateService(reader, app.logger)
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests and drains in-flight lookups.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
