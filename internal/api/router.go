// Package api assembles the AirScope HTTP API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/api/handler"
	"github.com/airscope/airscope/internal/api/middleware"
	"github.com/airscope/airscope/internal/auth"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/provider/resilience"
)

// RouterConfig holds the services the routes are served from.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger

	// Tracer and HTTPMetrics instrument every request. A nil Tracer uses the
	// global provider; nil HTTPMetrics disables the metrics middleware.
	Tracer      trace.Tracer
	HTTPMetrics *middleware.HTTPMetrics

	// Gatherer backs GET /metrics (default: the Prometheus default registry).
	Gatherer prometheus.Gatherer

	RequireTLS bool

	Gateway    *airquality.Gateway
	Forecaster *airquality.ForecastSynthesizer
	Locator    *location.Locator
	Search     *airquality.SearchService
	Resolver   *location.Resolver
	Stations   *airquality.StationService

	Registry *resilience.Registry
	Checks   []handler.Check

	// Tokens guards /v1/admin. Without a signing key the admin routes
	// answer 503.
	Tokens *auth.TokenService
}

// NewRouter creates the chi router with every route and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	if cfg.Forecaster == nil {
		cfg.Forecaster = airquality.NewForecastSynthesizer(airquality.ForecastConfig{})
	}
	if cfg.Locator == nil {
		cfg.Locator = location.NewLocator(location.LocatorConfig{Logger: cfg.Logger})
	}
	if cfg.Resolver == nil {
		cfg.Resolver = location.NewResolver(nil)
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	// Order matters: the request id must exist before tracing and logging
	// read it, and recovery must sit inside the logger to log the 500.
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(cfg.Tracer))
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))

	aqi := handler.NewAQIHandler(cfg.Gateway, cfg.Forecaster, cfg.Locator)
	locations := handler.NewLocationsHandler(cfg.Search, cfg.Resolver)
	stations := handler.NewStationsHandler(cfg.Stations)
	admin := handler.NewAdminHandler(cfg.Gateway, cfg.Logger)
	ops := handler.NewOpsHandler(handler.OpsConfig{
		Version:   cfg.Version,
		BuildTime: cfg.BuildTime,
		Registry:  cfg.Registry,
		Checks:    cfg.Checks,
		Caches:    cacheStatters(cfg),
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", ops.HealthCheck)
			r.Get("/ready", ops.ReadinessCheck)
			r.Get("/status", ops.SystemStatus)
		})

		r.Route("/aqi", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(middleware.ReadRateLimit))
			r.Get("/", aqi.Reading)
			r.Get("/geo", aqi.ReadingByCoordinates)
			r.Get("/forecast", aqi.Forecast)
			r.Get("/threshold", aqi.Threshold)
			r.Get("/levels", aqi.Levels)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(middleware.SearchRateLimit))
			r.Get("/search", locations.Search)
			r.Get("/suggestions", locations.Suggestions)
			r.Get("/popular", locations.Popular)
		})

		r.Route("/stations", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(middleware.ReadRateLimit))
			r.Get("/", stations.List)
			r.Get("/cities", stations.Cities)
			r.Get("/estimate", stations.Estimate)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(middleware.AdminRateLimit))
			r.Use(middleware.AdminAuth(cfg.Tokens))
			r.Use(middleware.RateLimitBySubject(middleware.AdminRateLimit))
			r.Delete("/cache/readings", admin.InvalidateReading)
		})
	})

	return r
}

// cacheStatters skips unset services so no typed nil reaches the interface.
func cacheStatters(cfg RouterConfig) []handler.CacheStatter {
	var out []handler.CacheStatter
	if cfg.Gateway != nil {
		out = append(out, cfg.Gateway)
	}
	if cfg.Search != nil {
		out = append(out, cfg.Search)
	}
	if cfg.Stations != nil {
		out = append(out, cfg.Stations)
	}
	return out
}
