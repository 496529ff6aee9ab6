package airquality

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
)

const tracerName = "github.com/airscope/airscope/internal/airquality"

// Gateway defaults.
const (
	DefaultReadingTimeout = 8 * time.Second
	DefaultReadingTTL     = 15 * time.Minute
)

// CurrentLocationName labels readings fetched by coordinates.
const CurrentLocationName = "Current Location"

// ReadingProvider is the primary upstream for readings.
type ReadingProvider interface {
	// Configured reports whether the provider holds a usable credential.
	Configured() bool

	// ReadingByName fetches the reading for an upstream search term.
	ReadingByName(ctx context.Context, term string) (Reading, error)

	// ReadingByCoordinates fetches the reading nearest to c.
	ReadingByCoordinates(ctx context.Context, c location.Coordinates) (Reading, error)
}

// GatewayConfig holds configuration for the Gateway.
type GatewayConfig struct {
	Provider ReadingProvider
	Resolver *location.Resolver
	Cache    *cache.Store[Reading]

	// Timeout bounds one upstream request (default: 8s).
	Timeout time.Duration

	// TTL is how long a reading stays fresh (default: 15 minutes).
	TTL time.Duration

	// Rand drives synthetic readings. Defaults to a time-seeded source.
	Rand *rand.Rand

	Clock   clockwork.Clock
	Logger  zerolog.Logger
	Metrics *observability.Metrics
}

// Gateway resolves a place name or coordinate into a reading. It always
// returns a reading; the Source tag says how reliable it is.
type Gateway struct {
	provider ReadingProvider
	resolver *location.Resolver
	cache    *cache.Store[Reading]
	timeout  time.Duration
	ttl      time.Duration
	clock    clockwork.Clock
	logger   zerolog.Logger
	metrics  *observability.Metrics
	tracer   trace.Tracer

	inflight singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGateway creates a Gateway.
func NewGateway(cfg GatewayConfig) *Gateway {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultReadingTimeout
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultReadingTTL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = location.NewResolver(nil)
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore[Reading](cache.StoreConfig{
			Namespace: cache.NamespaceReadings,
			TTL:       ttl,
			Clock:     clock,
			Logger:    cfg.Logger,
			Metrics:   cfg.Metrics,
		})
	}

	return &Gateway{
		provider: cfg.Provider,
		resolver: resolver,
		cache:    store,
		timeout:  timeout,
		ttl:      ttl,
		clock:    clock,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		tracer:   otel.Tracer(tracerName),
		rng:      rng,
	}
}

// lookup describes one retrieval through the state machine.
type lookup struct {
	key    string
	name   string
	coords *location.Coordinates
	fetch  func(ctx context.Context) (Reading, error)
	// byCoordinates pins the reading to coords instead of upstream geo.
	byCoordinates bool
}

// FetchReading returns the reading for a free-text place name.
func (g *Gateway) FetchReading(ctx context.Context, query string) Reading {
	name := location.Normalize(query)
	term := location.SearchTerm(query)

	l := lookup{
		key:  cache.NameKey(query),
		name: name,
		fetch: func(ctx context.Context) (Reading, error) {
			return g.provider.ReadingByName(ctx, term)
		},
	}
	if entry, ok := g.resolver.Lookup(query); ok {
		c := entry.Coordinates
		l.coords = &c
	}

	return g.do(ctx, l)
}

// FetchReadingByCoordinates returns the reading for a coordinate pair.
func (g *Gateway) FetchReadingByCoordinates(ctx context.Context, c location.Coordinates) (Reading, error) {
	if !c.Valid() {
		return Reading{}, fmt.Errorf("%w: %.4f,%.4f", ErrInvalidCoordinates, c.Lat, c.Lng)
	}

	l := lookup{
		key:    cache.CoordinateKey(c.Lat, c.Lng),
		name:   CurrentLocationName,
		coords: &c,
		fetch: func(ctx context.Context) (Reading, error) {
			return g.provider.ReadingByCoordinates(ctx, c)
		},
		byCoordinates: true,
	}
	return g.do(ctx, l), nil
}

// Invalidate drops the cached reading for a place name.
func (g *Gateway) Invalidate(ctx context.Context, query string) error {
	return g.cache.Delete(ctx, cache.NameKey(query))
}

// CacheStats returns the reading cache counters.
func (g *Gateway) CacheStats() cache.Stats {
	return g.cache.Stats()
}

// do coalesces concurrent lookups for the same key so only one of them
// walks the state machine. The shared walk is detached from the caller that
// started it; a caller that gives up leaves with an uncached answer while the
// walk completes for everyone else.
func (g *Gateway) do(ctx context.Context, l lookup) Reading {
	detached := context.WithoutCancel(ctx)
	ch := g.inflight.DoChan(l.key, func() (any, error) {
		return g.retrieve(detached, l), nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			g.logger.Debug().Str("key", l.key).Msg("joined in-flight reading request")
		}
		return res.Val.(Reading)
	case <-ctx.Done():
		return g.abandon(detached, l, ctx.Err())
	}
}

// abandon answers a caller that stopped waiting. Nothing is written to the
// cache: the upstream has not failed.
func (g *Gateway) abandon(ctx context.Context, l lookup, cause error) Reading {
	g.logger.Debug().Err(cause).Str("key", l.key).Msg("caller stopped waiting for reading")

	if r, ok := g.cache.Get(ctx, l.key); ok {
		return g.served(r)
	}
	if r, ok := g.cache.GetStale(ctx, l.key); ok {
		r.Source = SourceStaleCache
		return g.served(r)
	}
	return g.served(g.synthesize(l))
}

func (g *Gateway) retrieve(ctx context.Context, l lookup) Reading {
	ctx, span := g.tracer.Start(ctx, "airquality.Gateway.retrieve",
		trace.WithAttributes(attribute.String("aqi.cache_key", l.key)))
	defer span.End()

	if r, ok := g.cache.Get(ctx, l.key); ok {
		span.SetAttributes(attribute.String("aqi.state", "cache_fresh"))
		g.logger.Debug().Str("key", l.key).Msg("serving fresh cached reading")
		return g.served(r)
	}

	if g.provider == nil || !g.provider.Configured() {
		err := NewProviderError(KindConfig, "fetch reading", fmt.Errorf("upstream credential missing or malformed"))
		g.logger.Warn().Err(err).Str("key", l.key).Msg("upstream unconfigured, skipping network")
		span.SetAttributes(attribute.String("aqi.state", "unconfigured"))
		return g.fallback(ctx, l, span)
	}

	reading, err := g.attempt(ctx, l)
	if err == nil {
		span.SetAttributes(attribute.String("aqi.state", "live"))
		g.cache.Set(ctx, l.key, reading, g.ttl)
		g.logger.Debug().Str("key", l.key).Int("index", reading.Index).Msg("fetched live reading")
		return g.served(reading)
	}

	g.logger.Warn().
		Err(err).
		Str("key", l.key).
		Str("kind", string(KindOf(err))).
		Msg("reading request failed")
	span.RecordError(err)
	return g.fallback(ctx, l, span)
}

func (g *Gateway) attempt(ctx context.Context, l lookup) (Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := g.clock.Now()
	r, err := l.fetch(ctx)
	g.metrics.ObserveUpstream("waqi", g.clock.Since(start), err)
	if err != nil {
		return Reading{}, err
	}

	if r.LocationName != "" && !l.byCoordinates {
		r.LocationName = location.Normalize(r.LocationName)
	} else {
		r.LocationName = l.name
	}
	if l.byCoordinates || (r.Coordinates == location.Coordinates{}) {
		r.Coordinates = g.coordinatesFor(l)
	}
	if r.MeasuredAt.IsZero() {
		r.MeasuredAt = g.clock.Now()
	}
	r.Index = clampIndex(r.Index)
	r.Source = SourceLive
	return r, nil
}

func (g *Gateway) fallback(ctx context.Context, l lookup, span trace.Span) Reading {
	if r, ok := g.cache.GetStale(ctx, l.key); ok {
		g.logger.Warn().Str("key", l.key).Time("measured_at", r.MeasuredAt).Msg("serving stale cached reading")
		span.SetAttributes(attribute.String("aqi.state", "stale_fallback"))
		r.Source = SourceStaleCache
		return g.served(r)
	}

	r := g.synthesize(l)
	g.cache.Set(ctx, l.key, r, g.ttl)
	g.logger.Warn().Str("key", l.key).Int("index", r.Index).Msg("no cached reading, serving synthetic reading")
	span.SetAttributes(attribute.String("aqi.state", "synthetic_fallback"))
	return g.served(r)
}

func (g *Gateway) served(r Reading) Reading {
	g.metrics.ObserveGatewayOutcome(string(r.Source))
	return r
}

func (g *Gateway) coordinatesFor(l lookup) location.Coordinates {
	if l.coords != nil {
		return *l.coords
	}
	return location.DefaultCoordinates
}

// synthesize builds a bounded pseudo-random reading: index in [50,200],
// dominated by PM2.5.
func (g *Gateway) synthesize(l lookup) Reading {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()

	index := 50 + g.rng.Intn(151)
	pm25 := float64(20 + g.rng.Intn(80))

	return Reading{
		Index:             index,
		DominantPollutant: PollutantPM25,
		Concentrations: map[Pollutant]float64{
			PollutantPM25: pm25,
			PollutantPM10: pm25 + float64(10+g.rng.Intn(90)),
			PollutantNO2:  float64(10 + g.rng.Intn(50)),
			PollutantO3:   float64(20 + g.rng.Intn(80)),
			PollutantSO2:  float64(5 + g.rng.Intn(30)),
			PollutantCO:   float64(5+g.rng.Intn(20)) / 10,
		},
		Weather: map[string]float64{
			"t": float64(15 + g.rng.Intn(20)),
			"h": float64(30 + g.rng.Intn(40)),
			"p": float64(1010 + g.rng.Intn(20)),
			"w": float64(2 + g.rng.Intn(10)),
		},
		MeasuredAt:   g.clock.Now(),
		Coordinates:  g.coordinatesFor(l),
		LocationName: l.name,
		Source:       SourceSynthetic,
	}
}
