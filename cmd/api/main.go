// Package main provides the entrypoint for the AirScope API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/api"
	"github.com/airscope/airscope/internal/api/handler"
	"github.com/airscope/airscope/internal/api/middleware"
	"github.com/airscope/airscope/internal/app"
	"github.com/airscope/airscope/internal/auth"
	"github.com/airscope/airscope/internal/config"
	"github.com/airscope/airscope/internal/observability"
	"github.com/airscope/airscope/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var errStationsUnavailable = errors.New("station records upstream unavailable")

func main() {
	const serviceName = "airscope-api"

	cfg, err := config.Load()
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := cfg.NewLogger(serviceName, Version)
	log.Info().
		Str("build_time", BuildTime).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("starting AirScope API")

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTel.Endpoint,
		Enabled:        cfg.OTel.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTel.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTel.Endpoint).
			Msg("OpenTelemetry initialized")
	}

	httpMetrics, err := middleware.NewHTTPMetrics(tp.Meter)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	services, err := app.Build(ctx, cfg, app.Options{Logger: log, Metrics: metrics})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build services")
	}
	defer func() {
		if closeErr := services.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close cache backend")
		}
	}()

	tokens := auth.NewTokenService(auth.TokenConfig{SigningKey: cfg.AdminJWTSigningKey})
	if !tokens.Enabled() {
		log.Warn().Msg("ADMIN_JWT_SIGNING_KEY not set - admin endpoints disabled")
	}

	checks := []handler.Check{
		{Name: "cache", Critical: true, Probe: services.PingCache},
		{Name: "datagov", Probe: func(ctx context.Context) error {
			if !services.Stations.Healthy(ctx) {
				return errStationsUnavailable
			}
			return nil
		}},
	}

	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		Logger:      log,
		Tracer:      tp.Tracer,
		HTTPMetrics: httpMetrics,
		Gatherer:    prometheus.DefaultGatherer,
		RequireTLS:  cfg.RequireTLS,
		Gateway:     services.Gateway,
		Forecaster:  services.Forecaster,
		Search:      services.Search,
		Resolver:    services.Resolver,
		Stations:    services.Stations,
		Registry:    services.Registry,
		Checks:      checks,
		Tokens:      tokens,
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
