// Package app assembles the acquisition services shared by the API server,
// the warm-up worker and the command-line client.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/airquality/datagov"
	"github.com/airscope/airscope/internal/airquality/waqi"
	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/config"
	"github.com/airscope/airscope/internal/database"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
	"github.com/airscope/airscope/internal/provider/resilience"
)

// Pinger is implemented by cache backends that can verify their storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the wired acquisition services.
type Services struct {
	Resolver   *location.Resolver
	Gateway    *airquality.Gateway
	Search     *airquality.SearchService
	Stations   *airquality.StationService
	Forecaster *airquality.ForecastSynthesizer
	Registry   *resilience.Registry

	// KV is the backend shared by every cache namespace.
	KV cache.KV

	closers []func() error
}

// Options are the inputs to Build besides the configuration.
type Options struct {
	Logger  zerolog.Logger
	Metrics *observability.Metrics
}

// Build opens the cache backend and wires the upstream clients and services.
func Build(ctx context.Context, cfg *config.Config, opts Options) (*Services, error) {
	logger := opts.Logger
	s := &Services{Registry: resilience.NewRegistry()}

	gazetteer, err := location.DefaultGazetteer().WithExtensionFile(cfg.GazetteerExtraFile)
	if err != nil {
		return nil, err
	}
	s.Resolver = location.NewResolver(gazetteer)
	if cfg.GazetteerExtraFile != "" {
		logger.Info().
			Str("file", cfg.GazetteerExtraFile).
			Int("entries", gazetteer.Len()).
			Msg("gazetteer extended")
	}

	if err := s.openKV(ctx, cfg, logger); err != nil {
		return nil, err
	}

	waqiClient := waqi.NewClient(waqi.ClientConfig{
		BaseURL:   cfg.WAQI.BaseURL,
		Token:     cfg.WAQI.Token,
		Timeout:   cfg.WAQI.ReadingTimeout,
		RateLimit: cfg.WAQI.RateLimit,
		Registry:  s.Registry,
		Logger:    logger,
	})
	if !waqiClient.Configured() {
		logger.Warn().Msg("WAQI token missing or too short - readings will come from cache or be synthesized")
	}

	dataGovClient := datagov.NewClient(datagov.ClientConfig{
		BaseURL:  cfg.DataGov.BaseURL,
		APIKey:   cfg.DataGov.APIKey,
		Timeout:  cfg.DataGov.Timeout,
		Registry: s.Registry,
		Logger:   logger,
	})
	if !dataGovClient.Configured() {
		logger.Warn().Msg("data.gov.in API key not configured - station endpoints will serve cached or empty lists")
	}

	s.Gateway = airquality.NewGateway(airquality.GatewayConfig{
		Provider: waqiClient,
		Resolver: s.Resolver,
		Cache: cache.NewStore[airquality.Reading](cache.StoreConfig{
			Namespace: cache.NamespaceReadings,
			KV:        s.KV,
			TTL:       cfg.Cache.TTL,
			Logger:    logger,
			Metrics:   opts.Metrics,
		}),
		Timeout: cfg.WAQI.ReadingTimeout,
		TTL:     cfg.Cache.TTL,
		Rand:    newRand(cfg.SyntheticSeed),
		Logger:  logger,
		Metrics: opts.Metrics,
	})

	s.Search = airquality.NewSearchService(airquality.SearchServiceConfig{
		Provider: waqiClient,
		Resolver: s.Resolver,
		Cache: cache.NewStore[[]airquality.Suggestion](cache.StoreConfig{
			Namespace: cache.NamespaceSearch,
			KV:        s.KV,
			TTL:       cfg.Cache.TTL,
			Logger:    logger,
			Metrics:   opts.Metrics,
		}),
		Timeout: cfg.WAQI.SearchTimeout,
		TTL:     cfg.Cache.TTL,
		Logger:  logger,
		Metrics: opts.Metrics,
	})

	s.Stations = airquality.NewStationService(airquality.StationServiceConfig{
		Provider: dataGovClient,
		Cache: cache.NewStore[[]airquality.Station](cache.StoreConfig{
			Namespace: cache.NamespaceStations,
			KV:        s.KV,
			TTL:       cfg.Cache.StationTTL,
			Logger:    logger,
			Metrics:   opts.Metrics,
		}),
		TTL:     cfg.Cache.StationTTL,
		Logger:  logger,
		Metrics: opts.Metrics,
	})

	s.Forecaster = airquality.NewForecastSynthesizer(airquality.ForecastConfig{
		Rand: newRand(cfg.SyntheticSeed),
	})

	return s, nil
}

func (s *Services) openKV(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	switch cfg.Cache.Backend {
	case config.BackendSQLite:
		kv, err := cache.OpenSQLite(cfg.Cache.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite cache: %w", err)
		}
		s.KV = kv
		s.closers = append(s.closers, kv.Close)
		logger.Info().Str("path", cfg.Cache.SQLitePath).Msg("sqlite cache opened")

	case config.BackendPostgres:
		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect cache database: %w", err)
		}
		kv := cache.NewPostgresKV(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return err
		}
		s.KV = kv
		s.closers = append(s.closers, func() error {
			pool.Close()
			return nil
		})
		logger.Info().
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.Database).
			Msg("postgres cache connected")

	default:
		s.KV = cache.NewMemoryKV()
	}
	return nil
}

// PingCache verifies the cache backend. The in-memory backend always passes.
func (s *Services) PingCache(ctx context.Context) error {
	if p, ok := s.KV.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// PruneCache removes entries not written since before cutoff when the
// backend supports it.
func (s *Services) PruneCache(ctx context.Context, cutoff time.Time) (int64, error) {
	kv, ok := s.KV.(*cache.SQLiteKV)
	if !ok {
		return 0, ErrPruneUnsupported
	}
	return kv.Prune(ctx, cutoff)
}

// ErrPruneUnsupported is returned by PruneCache for backends without pruning.
var ErrPruneUnsupported = errors.New("cache backend does not support pruning")

// Close releases the cache backend.
func (s *Services) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // not used for security
}
