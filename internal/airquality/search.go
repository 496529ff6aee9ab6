package airquality

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
)

// Search limits.
const (
	DefaultSearchTimeout   = 3 * time.Second
	gazetteerSearchLimit   = 8
	instantSuggestionLimit = 6
	popularSuggestionLimit = 5
	networkSuggestionLimit = 5
)

// SearchHit is a station returned by the upstream keyword search.
type SearchHit struct {
	Name        string
	Coordinates location.Coordinates
}

// SearchProvider is the upstream keyword search.
type SearchProvider interface {
	Configured() bool
	SearchStations(ctx context.Context, keyword string) ([]SearchHit, error)
}

// SearchServiceConfig holds configuration for the SearchService.
type SearchServiceConfig struct {
	Provider SearchProvider
	Resolver *location.Resolver
	Cache    *cache.Store[[]Suggestion]

	// Timeout bounds the upstream search request (default: 3s).
	Timeout time.Duration

	// TTL is how long a suggestion list is cached (default: 15 minutes).
	TTL time.Duration

	Logger  zerolog.Logger
	Metrics *observability.Metrics
}

// SearchService turns partial place names into suggestions. The gazetteer
// is always consulted before the network.
type SearchService struct {
	provider SearchProvider
	resolver *location.Resolver
	cache    *cache.Store[[]Suggestion]
	timeout  time.Duration
	ttl      time.Duration
	logger   zerolog.Logger
	metrics  *observability.Metrics
}

// NewSearchService creates a SearchService.
func NewSearchService(cfg SearchServiceConfig) *SearchService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultSearchTimeout
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultReadingTTL
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = location.NewResolver(nil)
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore[[]Suggestion](cache.StoreConfig{
			Namespace: cache.NamespaceSearch,
			TTL:       ttl,
			Logger:    cfg.Logger,
			Metrics:   cfg.Metrics,
		})
	}

	return &SearchService{
		provider: cfg.Provider,
		resolver: resolver,
		cache:    store,
		timeout:  timeout,
		ttl:      ttl,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Search returns up to eight suggestions for query. A query shorter than
// two characters returns an empty list.
func (s *SearchService) Search(ctx context.Context, query string) []Suggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < location.MinQueryLength {
		return []Suggestion{}
	}

	key := cache.NameKey(query)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached
	}

	if results := s.resolver.Search(query, gazetteerSearchLimit); len(results) > 0 {
		return s.remember(ctx, key, fromResults(results))
	}

	if popular := s.popularMatching(query); len(popular) > 0 {
		return s.remember(ctx, key, popular)
	}

	if hits := s.searchNetwork(ctx, query); len(hits) > 0 {
		return s.remember(ctx, key, hits)
	}

	return []Suggestion{}
}

// InstantSuggestions answers from the gazetteer alone. An empty query
// returns the first popular cities.
func (s *SearchService) InstantSuggestions(query string) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		popular := s.resolver.PopularCities()
		if len(popular) > popularSuggestionLimit {
			popular = popular[:popularSuggestionLimit]
		}
		out := make([]Suggestion, 0, len(popular))
		for _, e := range popular {
			out = append(out, Suggestion{Name: e.DisplayName(), Coordinates: e.Coordinates, Source: SuggestionPopular})
		}
		return out
	}

	return fromResults(s.resolver.Search(query, instantSuggestionLimit))
}

func (s *SearchService) popularMatching(query string) []Suggestion {
	q := strings.ToLower(query)
	var out []Suggestion
	for _, e := range s.resolver.PopularCities() {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, Suggestion{Name: e.DisplayName(), Coordinates: e.Coordinates, Source: SuggestionPopular})
		}
	}
	return out
}

func (s *SearchService) searchNetwork(ctx context.Context, query string) []Suggestion {
	if s.provider == nil || !s.provider.Configured() {
		s.logger.Debug().Str("query", query).Msg("search upstream unconfigured, skipping network")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	hits, err := s.provider.SearchStations(ctx, query)
	s.metrics.ObserveUpstream("waqi_search", time.Since(start), err)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Str("kind", string(KindOf(err))).Msg("network search failed")
		return nil
	}
	if len(hits) == 0 {
		err := NewProviderError(KindEmptyResult, "search", nil)
		s.logger.Debug().Err(err).Str("query", query).Msg("network search returned nothing")
		return nil
	}

	if len(hits) > networkSuggestionLimit {
		hits = hits[:networkSuggestionLimit]
	}
	out := make([]Suggestion, 0, len(hits))
	for _, h := range hits {
		out = append(out, Suggestion{
			Name:        location.Normalize(h.Name),
			Coordinates: h.Coordinates,
			Source:      SuggestionNetwork,
		})
	}
	return out
}

func (s *SearchService) remember(ctx context.Context, key string, suggestions []Suggestion) []Suggestion {
	s.cache.Set(ctx, key, suggestions, s.ttl)
	return suggestions
}

func fromResults(results []location.Result) []Suggestion {
	out := make([]Suggestion, 0, len(results))
	for _, r := range results {
		out = append(out, Suggestion{
			Name:        r.Entry.DisplayName(),
			Coordinates: r.Entry.Coordinates,
			Source:      SuggestionGazetteer,
		})
	}
	return out
}

// CacheStats returns the search cache counters.
func (s *SearchService) CacheStats() cache.Stats {
	return s.cache.Stats()
}
