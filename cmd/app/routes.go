package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"xrate/internal/api"
	"xrate/internal/api/middleware"
	"xrate/internal/service"
)

func (app *App) initHTTP(rateService service.RateServiceInterface) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.router(rateService),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Duration(app.cfg.Feed.TimeoutSec)*time.Second + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func (app *App) router(rateService service.RateServiceInterface) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(middleware.MetricsMiddleware(app.registry))
	r.Use(chimiddleware.Recoverer)

	r.Route("/rates/{year}/{month}/{day}", func(r chi.Router) {
		r.Get("/", api.HandleGetRate(rateService))
		r.Get("/cross", api.HandleGetCrossRate(rateService))
	})
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.cfg.Feed.BaseURL))
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
