package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"datalib/internal/config"
	"datalib/internal/middleware"
)

// NewRouter assembles the full HTTP router: middleware chain, data library
// API, health check and Prometheus metrics.
func NewRouter(cfg *config.Config, service DataServiceInterface, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))

	if cfg.Server.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
		r.Use(limiter.Handler)
	}

	r.Mount("/api/library", NewDataHandler(service, logger).Routes())
	r.Get("/healthz", NewHealthHandler(cfg.Library.Root, logger).Healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
