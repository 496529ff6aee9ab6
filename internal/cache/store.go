package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
)

// Namespaces used across the acquisition layer.
const (
	NamespaceReadings = "aqi_cache"
	NamespaceSearch   = "search_cache"
	NamespaceStations = "datagov_aqi"
)

// DefaultTTL is the lifetime of a cache entry when none is given.
const DefaultTTL = 15 * time.Minute

// Entry is the stored form of a cached value.
type Entry[T any] struct {
	Data T `json:"data"`
	// Timestamp is the write time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
	// TTL is the entry lifetime in milliseconds.
	TTL int64 `json:"ttl"`
}

// WrittenAt returns the entry write time.
func (e Entry[T]) WrittenAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Stats are counters for one Store.
type Stats struct {
	Namespace string `json:"namespace"`
	Fresh     int64  `json:"fresh"`
	Stale     int64  `json:"stale"`
	Misses    int64  `json:"misses"`
	Writes    int64  `json:"writes"`
	Errors    int64  `json:"errors"`
}

// StoreConfig configures a Store.
type StoreConfig struct {
	Namespace string
	KV        KV
	TTL       time.Duration
	Clock     clockwork.Clock
	Logger    zerolog.Logger
	Metrics   *observability.Metrics
}

// Store is a namespaced TTL cache of JSON-encoded values of type T.
// Backend failures are logged and reported as absent values, never as errors.
type Store[T any] struct {
	namespace string
	kv        KV
	ttl       time.Duration
	clock     clockwork.Clock
	logger    zerolog.Logger
	metrics   *observability.Metrics

	fresh  atomic.Int64
	stale  atomic.Int64
	misses atomic.Int64
	writes atomic.Int64
	errs   atomic.Int64
}

// NewStore creates a Store.
func NewStore[T any](cfg StoreConfig) *Store[T] {
	if cfg.KV == nil {
		cfg.KV = NewMemoryKV()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	return &Store[T]{
		namespace: cfg.Namespace,
		kv:        cfg.KV,
		ttl:       cfg.TTL,
		clock:     cfg.Clock,
		logger:    cfg.Logger.With().Str("cache", cfg.Namespace).Logger(),
		metrics:   cfg.Metrics,
	}
}

// Namespace returns the store namespace.
func (s *Store[T]) Namespace() string { return s.namespace }

// TTL returns the default entry lifetime.
func (s *Store[T]) TTL() time.Duration { return s.ttl }

// Get returns the value for key only while it is fresh.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T

	entry, ok := s.load(ctx, key)
	if !ok {
		s.recordLookup("miss")
		return zero, false
	}
	if !s.isFresh(entry) {
		s.recordLookup("miss")
		return zero, false
	}

	s.recordLookup("fresh")
	return entry.Data, true
}

// GetStale returns the value for key regardless of age.
func (s *Store[T]) GetStale(ctx context.Context, key string) (T, bool) {
	var zero T

	entry, ok := s.load(ctx, key)
	if !ok {
		s.recordLookup("miss")
		return zero, false
	}

	s.recordLookup("stale")
	return entry.Data, true
}

// Lookup returns the raw entry for key, fresh or not.
func (s *Store[T]) Lookup(ctx context.Context, key string) (Entry[T], bool) {
	return s.load(ctx, key)
}

// Set stores payload under key with the given ttl, replacing any previous
// entry. A non-positive ttl uses the store default.
func (s *Store[T]) Set(ctx context.Context, key string, payload T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.ttl
	}

	entry := Entry[T]{
		Data:      payload,
		Timestamp: s.clock.Now().UnixMilli(),
		TTL:       ttl.Milliseconds(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.errs.Add(1)
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}

	if err := s.kv.Set(ctx, s.fullKey(key), raw); err != nil {
		s.errs.Add(1)
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to write cache entry")
		return
	}

	s.writes.Add(1)
	s.metrics.ObserveCacheWrite(s.namespace)
}

// Delete removes key.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, s.fullKey(key)); err != nil {
		s.errs.Add(1)
		return fmt.Errorf("delete %s: %w", s.fullKey(key), err)
	}
	return nil
}

// Stats returns a snapshot of the store counters.
func (s *Store[T]) Stats() Stats {
	return Stats{
		Namespace: s.namespace,
		Fresh:     s.fresh.Load(),
		Stale:     s.stale.Load(),
		Misses:    s.misses.Load(),
		Writes:    s.writes.Load(),
		Errors:    s.errs.Load(),
	}
}

func (s *Store[T]) load(ctx context.Context, key string) (Entry[T], bool) {
	var entry Entry[T]

	raw, ok, err := s.kv.Get(ctx, s.fullKey(key))
	if err != nil {
		s.errs.Add(1)
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to read cache entry")
		return entry, false
	}
	if !ok {
		return entry, false
	}

	if err := json.Unmarshal(raw, &entry); err != nil {
		s.errs.Add(1)
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return entry, false
	}
	return entry, true
}

func (s *Store[T]) isFresh(e Entry[T]) bool {
	ttl := time.Duration(e.TTL) * time.Millisecond
	if ttl <= 0 {
		ttl = s.ttl
	}
	return s.clock.Now().Sub(e.WrittenAt()) < ttl
}

func (s *Store[T]) recordLookup(result string) {
	switch result {
	case "fresh":
		s.fresh.Add(1)
	case "stale":
		s.stale.Add(1)
	default:
		s.misses.Add(1)
	}
	s.metrics.ObserveCacheLookup(s.namespace, result)
}

func (s *Store[T]) fullKey(key string) string {
	return s.namespace + "_" + key
}

var whitespace = regexp.MustCompile(`\s+`)

// NameKey derives the cache key for a free-text location.
func NameKey(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(location.Normalize(name)), "_")
}

// CoordinateKey derives the cache key for a coordinate pair, rounded to
// four decimal places.
func CoordinateKey(lat, lng float64) string {
	return fmt.Sprintf("geo_%.4f_%.4f", round4(lat), round4(lng))
}

func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		return 0
	}
	return r
}
