package airquality_test

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
)

// fakeReadings is a configurable ReadingProvider.
type fakeReadings struct {
	configured bool
	reading    airquality.Reading
	err        error
	hang       bool
	release    chan struct{}

	calls     atomic.Int32
	lastTerm  atomic.Value
	lastCoord atomic.Value
}

func (f *fakeReadings) Configured() bool { return f.configured }

func (f *fakeReadings) ReadingByName(ctx context.Context, term string) (airquality.Reading, error) {
	f.lastTerm.Store(term)
	return f.respond(ctx)
}

func (f *fakeReadings) ReadingByCoordinates(ctx context.Context, c location.Coordinates) (airquality.Reading, error) {
	f.lastCoord.Store(c)
	return f.respond(ctx)
}

func (f *fakeReadings) respond(ctx context.Context) (airquality.Reading, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.hang {
		<-ctx.Done()
		return airquality.Reading{}, airquality.NewProviderError(airquality.KindTimeout, "feed", ctx.Err())
	}
	if f.err != nil {
		return airquality.Reading{}, f.err
	}
	return f.reading, nil
}

type gatewayFixture struct {
	gw       *airquality.Gateway
	store    *cache.Store[airquality.Reading]
	clock    *clockwork.FakeClock
	provider *fakeReadings
}

func newGatewayFixture(t *testing.T, provider *fakeReadings) gatewayFixture {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC))
	metrics := observability.NewMetricsForTesting()
	store := cache.NewStore[airquality.Reading](cache.StoreConfig{
		Namespace: cache.NamespaceReadings,
		KV:        cache.NewMemoryKV(),
		TTL:       15 * time.Minute,
		Clock:     clock,
		Logger:    zerolog.New(io.Discard),
		Metrics:   metrics,
	})
	gw := airquality.NewGateway(airquality.GatewayConfig{
		Provider: provider,
		Cache:    store,
		Timeout:  50 * time.Millisecond,
		TTL:      15 * time.Minute,
		Rand:     rand.New(rand.NewSource(42)),
		Clock:    clock,
		Logger:   zerolog.New(io.Discard),
		Metrics:  metrics,
	})
	return gatewayFixture{gw: gw, store: store, clock: clock, provider: provider}
}

func liveMumbai() airquality.Reading {
	return airquality.Reading{
		Index:             142,
		DominantPollutant: airquality.PollutantPM10,
		Concentrations:    map[airquality.Pollutant]float64{airquality.PollutantPM10: 142},
		MeasuredAt:        time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
		Coordinates:       location.Coordinates{Lat: 19.07, Lng: 72.87},
		LocationName:      "Mumbai, Mumbai, India",
	}
}

func TestGateway_FreshCacheSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	fx := newGatewayFixture(t, &fakeReadings{configured: true, reading: liveMumbai()})

	cached := liveMumbai()
	cached.Source = airquality.SourceLive
	fx.store.Set(ctx, cache.NameKey("Mumbai"), cached, 0)

	r := fx.gw.FetchReading(ctx, "Mumbai")
	assert.Equal(t, int32(0), fx.provider.calls.Load())
	assert.Equal(t, 142, r.Index)
	assert.Equal(t, airquality.SourceLive, r.Source)
}

func TestGateway_LiveReadingIsNormalizedAndCached(t *testing.T) {
	ctx := context.Background()
	fx := newGatewayFixture(t, &fakeReadings{configured: true, reading: liveMumbai()})

	r := fx.gw.FetchReading(ctx, "Andheri, Mumbai, Maharashtra")
	assert.Equal(t, airquality.SourceLive, r.Source)
	assert.Equal(t, "Mumbai, India", r.LocationName)
	assert.Equal(t, "Mumbai", fx.provider.lastTerm.Load())

	again := fx.gw.FetchReading(ctx, "Andheri, Mumbai, Maharashtra")
	assert.Equal(t, int32(1), fx.provider.calls.Load())
	assert.Equal(t, r.Index, again.Index)
}

func TestGateway_TimeoutFallsBackToCachedSynthetic(t *testing.T) {
	ctx := context.Background()
	fx := newGatewayFixture(t, &fakeReadings{configured: true, hang: true})

	first := fx.gw.FetchReading(ctx, "Atlantis")
	assert.Equal(t, airquality.SourceSynthetic, first.Source)
	assert.GreaterOrEqual(t, first.Index, 50)
	assert.LessOrEqual(t, first.Index, 200)
	assert.Equal(t, airquality.PollutantPM25, first.DominantPollutant)
	assert.Equal(t, location.DefaultCoordinates, first.Coordinates)

	fx.clock.Advance(10 * time.Minute)
	second := fx.gw.FetchReading(ctx, "Atlantis")

	assert.Equal(t, int32(1), fx.provider.calls.Load(), "second call within ttl must not hit the network")
	assert.Equal(t, airquality.SourceSynthetic, second.Source)
	assert.Equal(t, first.Index, second.Index)
	assert.Equal(t, first.Concentrations, second.Concentrations)
	assert.True(t, first.MeasuredAt.Equal(second.MeasuredAt))
}

func TestGateway_UnconfiguredSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	fx := newGatewayFixture(t, &fakeReadings{configured: false, reading: liveMumbai()})

	r := fx.gw.FetchReading(ctx, "Koramangala")
	assert.Equal(t, int32(0), fx.provider.calls.Load())
	assert.Equal(t, airquality.SourceSynthetic, r.Source)
	assert.Equal(t, location.Coordinates{Lat: 12.9279, Lng: 77.6271}, r.Coordinates)
	assert.Equal(t, "Koramangala", r.LocationName)
}

func TestGateway_FailureServesStaleCache(t *testing.T) {
	ctx := context.Background()
	provider := &fakeReadings{configured: true, reading: liveMumbai()}
	fx := newGatewayFixture(t, provider)

	live := fx.gw.FetchReading(ctx, "Mumbai")
	require.Equal(t, airquality.SourceLive, live.Source)

	fx.clock.Advance(time.Hour)
	provider.err = airquality.NewProviderError(airquality.KindUpstreamStatus, "feed", errors.New("Unknown station"))

	stale := fx.gw.FetchReading(ctx, "Mumbai")
	assert.Equal(t, airquality.SourceStaleCache, stale.Source)
	assert.Equal(t, live.Index, stale.Index)
	assert.Equal(t, int32(2), provider.calls.Load())
}

func TestGateway_FetchReadingByCoordinates(t *testing.T) {
	ctx := context.Background()
	fx := newGatewayFixture(t, &fakeReadings{configured: true, reading: liveMumbai()})

	query := location.Coordinates{Lat: 19.1136, Lng: 72.8697}
	r, err := fx.gw.FetchReadingByCoordinates(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, airquality.SourceLive, r.Source)
	assert.Equal(t, query, r.Coordinates)
	assert.Equal(t, airquality.CurrentLocationName, r.LocationName)
	assert.Equal(t, query, fx.provider.lastCoord.Load())

	_, ok := fx.store.Get(ctx, cache.CoordinateKey(query.Lat, query.Lng))
	assert.True(t, ok)

	_, err = fx.gw.FetchReadingByCoordinates(ctx, location.Coordinates{Lat: 123, Lng: 0})
	assert.ErrorIs(t, err, airquality.ErrInvalidCoordinates)
}

func TestGateway_CoalescesConcurrentRequests(t *testing.T) {
	ctx := context.Background()
	provider := &fakeReadings{configured: true, reading: liveMumbai(), release: make(chan struct{})}
	fx := newGatewayFixture(t, provider)
	// Hold the upstream long enough for every caller to queue behind it.
	fx.gw = airquality.NewGateway(airquality.GatewayConfig{
		Provider: provider,
		Cache:    fx.store,
		Timeout:  5 * time.Second,
		Clock:    fx.clock,
		Logger:   zerolog.New(io.Discard),
	})

	var wg sync.WaitGroup
	results := make([]airquality.Reading, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = fx.gw.FetchReading(ctx, "Mumbai")
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(provider.release)
	wg.Wait()

	assert.Equal(t, int32(1), provider.calls.Load())
	for _, r := range results {
		assert.Equal(t, 142, r.Index)
	}
}

func TestGateway_CancelledCallerDoesNotCacheFallback(t *testing.T) {
	provider := &fakeReadings{configured: true, reading: liveMumbai(), release: make(chan struct{})}
	fx := newGatewayFixture(t, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := fx.gw.FetchReading(ctx, "Mumbai")
	assert.Equal(t, airquality.SourceSynthetic, r.Source)
	_, cached := fx.store.GetStale(context.Background(), cache.NameKey("Mumbai"))
	assert.False(t, cached, "an abandoned request must not write a fallback")

	close(provider.release)
	require.Eventually(t, func() bool {
		_, ok := fx.store.Get(context.Background(), cache.NameKey("Mumbai"))
		return ok
	}, time.Second, 5*time.Millisecond)

	live := fx.gw.FetchReading(context.Background(), "Mumbai")
	assert.Equal(t, airquality.SourceLive, live.Source)
	assert.Equal(t, 142, live.Index)
	assert.Equal(t, int32(1), provider.calls.Load())
}

func TestGateway_CallerDeadlineWithEmptyCache(t *testing.T) {
	provider := &fakeReadings{configured: true, reading: liveMumbai(), release: make(chan struct{})}
	t.Cleanup(func() { close(provider.release) })
	fx := newGatewayFixture(t, provider)
	fx.gw = airquality.NewGateway(airquality.GatewayConfig{
		Provider: provider,
		Cache:    fx.store,
		Timeout:  5 * time.Second,
		Rand:     rand.New(rand.NewSource(7)),
		Clock:    fx.clock,
		Logger:   zerolog.New(io.Discard),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	r := fx.gw.FetchReading(ctx, "Pune")
	assert.Less(t, time.Since(start), time.Second, "caller deadline bounds the wait")
	assert.Equal(t, airquality.SourceSynthetic, r.Source)
	assert.Equal(t, "Pune", r.LocationName)

	_, cached := fx.store.GetStale(context.Background(), cache.NameKey("Pune"))
	assert.False(t, cached)
}

func TestGateway_CancelledCallerGetsStaleEntry(t *testing.T) {
	provider := &fakeReadings{configured: true, reading: liveMumbai(), release: make(chan struct{})}
	t.Cleanup(func() { close(provider.release) })
	fx := newGatewayFixture(t, provider)

	old := liveMumbai()
	old.Index = 95
	old.Source = airquality.SourceLive
	fx.store.Set(context.Background(), cache.NameKey("Mumbai"), old, 0)
	fx.clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := fx.gw.FetchReading(ctx, "Mumbai")
	assert.Equal(t, airquality.SourceStaleCache, r.Source)
	assert.Equal(t, 95, r.Index)
}

func TestGateway_JoinedCallerOutlivesCancelledLeader(t *testing.T) {
	provider := &fakeReadings{configured: true, reading: liveMumbai(), release: make(chan struct{})}
	fx := newGatewayFixture(t, provider)
	fx.gw = airquality.NewGateway(airquality.GatewayConfig{
		Provider: provider,
		Cache:    fx.store,
		Timeout:  5 * time.Second,
		Clock:    fx.clock,
		Logger:   zerolog.New(io.Discard),
	})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leader := make(chan airquality.Reading, 1)
	go func() { leader <- fx.gw.FetchReading(leaderCtx, "Mumbai") }()
	require.Eventually(t, func() bool { return provider.calls.Load() == 1 }, time.Second, time.Millisecond)

	follower := make(chan airquality.Reading, 1)
	go func() { follower <- fx.gw.FetchReading(context.Background(), "Mumbai") }()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	abandoned := <-leader
	assert.NotEqual(t, airquality.SourceLive, abandoned.Source)

	close(provider.release)
	joined := <-follower
	assert.Equal(t, airquality.SourceLive, joined.Source)
	assert.Equal(t, 142, joined.Index)
	assert.Equal(t, int32(1), provider.calls.Load())
}

func TestGateway_Invalidate(t *testing.T) {
	ctx := context.Background()
	provider := &fakeReadings{configured: true, reading: liveMumbai()}
	fx := newGatewayFixture(t, provider)

	fx.gw.FetchReading(ctx, "Mumbai")
	require.NoError(t, fx.gw.Invalidate(ctx, "Mumbai"))
	fx.gw.FetchReading(ctx, "Mumbai")

	assert.Equal(t, int32(2), provider.calls.Load())
	assert.Equal(t, int64(2), fx.gw.CacheStats().Writes)
}
