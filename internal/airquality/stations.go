package airquality

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/observability"
)

// Station service defaults.
const (
	DefaultStationTTL  = 5 * time.Minute
	healthProbeTimeout = 5 * time.Second
	allStationsKey     = "all"
	recordTimeLayout   = "02-01-2006 15:04:05"
)

var indiaStandardTime = time.FixedZone("IST", 5*60*60+30*60)

// fallbackCities is served by AvailableCities when no station data is
// available.
var fallbackCities = []string{
	"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Kanpur", "Nagpur",
	"Indore", "Thane", "Bhopal", "Visakhapatnam", "Pimpri-Chinchwad",
	"Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
}

// recordPollutants maps government pollutant ids onto pollutants.
var recordPollutants = map[string]Pollutant{
	"PM2.5": PollutantPM25,
	"PM10":  PollutantPM10,
	"NO2":   PollutantNO2,
	"SO2":   PollutantSO2,
	"CO":    PollutantCO,
	"OZONE": PollutantO3,
	"NH3":   PollutantNH3,
	"PB":    PollutantPb,
}

// StationRecord is one pollutant row from the government records API.
type StationRecord struct {
	Station     string
	City        string
	State       string
	Agency      string
	LastUpdate  string
	PollutantID string
	Min         string
	Max         string
	Avg         string
	Unit        string
	Latitude    string
	Longitude   string
}

// RecordProvider is the government records upstream.
type RecordProvider interface {
	Configured() bool

	// Records returns station records, filtered upstream by city when city
	// is not empty.
	Records(ctx context.Context, city string) ([]StationRecord, error)

	// Probe requests a single record.
	Probe(ctx context.Context) error
}

// StationEstimate is an index estimated between stations.
type StationEstimate struct {
	Coordinates       location.Coordinates             `json:"coordinates"`
	Index             int                              `json:"index"`
	DominantPollutant Pollutant                        `json:"dominantPollutant"`
	Level             string                           `json:"level"`
	Confidence        Confidence                       `json:"confidence"`
	Values            map[Pollutant]*InterpolatedValue `json:"values"`
}

// StationServiceConfig holds configuration for the StationService.
type StationServiceConfig struct {
	Provider      RecordProvider
	Calculator    *Calculator
	Cache         *cache.Store[[]Station]
	TTL           time.Duration
	Interpolation InterpolationConfig
	Logger        zerolog.Logger
	Metrics       *observability.Metrics
}

// StationService serves government monitoring stations.
type StationService struct {
	provider     RecordProvider
	calc         *Calculator
	cache        *cache.Store[[]Station]
	ttl          time.Duration
	interpolator *Interpolator
	logger       zerolog.Logger
	metrics      *observability.Metrics
}

// NewStationService creates a StationService.
func NewStationService(cfg StationServiceConfig) *StationService {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultStationTTL
	}
	calc := cfg.Calculator
	if calc == nil {
		calc = NewCalculator()
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore[[]Station](cache.StoreConfig{
			Namespace: cache.NamespaceStations,
			TTL:       ttl,
			Logger:    cfg.Logger,
			Metrics:   cfg.Metrics,
		})
	}

	return &StationService{
		provider:     cfg.Provider,
		calc:         calc,
		cache:        store,
		ttl:          ttl,
		interpolator: NewInterpolator(cfg.Interpolation),
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}
}

// Stations returns the stations for city, or every station when city is
// empty. Upstream failures fall back to stale data and then to an empty list.
func (s *StationService) Stations(ctx context.Context, city string) []Station {
	city = strings.TrimSpace(city)
	key := allStationsKey
	if city != "" {
		key = cache.NameKey(city)
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached
	}

	stations, err := s.fetch(ctx, city)
	if err != nil {
		s.logger.Warn().Err(err).Str("city", city).Str("kind", string(KindOf(err))).Msg("failed to fetch station records")
		if stale, ok := s.cache.GetStale(ctx, key); ok {
			s.logger.Warn().Str("city", city).Msg("serving stale station data")
			return stale
		}
		return []Station{}
	}

	if len(stations) > 0 {
		s.cache.Set(ctx, key, stations, s.ttl)
	}
	return stations
}

func (s *StationService) fetch(ctx context.Context, city string) ([]Station, error) {
	if s.provider == nil || !s.provider.Configured() {
		return nil, NewProviderError(KindConfig, "fetch stations", nil)
	}

	start := time.Now()
	records, err := s.provider.Records(ctx, city)
	s.metrics.ObserveUpstream("datagov", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Info().Str("city", city).Msg("no station records returned")
		return []Station{}, nil
	}

	stations := GroupRecords(records, s.calc)
	if city == "" {
		return stations, nil
	}

	want := strings.ToLower(city)
	var matched []Station
	for _, st := range stations {
		if strings.Contains(strings.ToLower(st.City), want) || strings.Contains(strings.ToLower(st.Name), want) {
			matched = append(matched, st)
		}
	}
	if len(matched) == 0 {
		return stations, nil
	}
	return matched, nil
}

// AvailableCities returns the sorted distinct cities that have stations.
func (s *StationService) AvailableCities(ctx context.Context) []string {
	stations := s.Stations(ctx, "")
	seen := make(map[string]struct{}, len(stations))
	var cities []string
	for _, st := range stations {
		if st.City == "" {
			continue
		}
		if _, dup := seen[st.City]; dup {
			continue
		}
		seen[st.City] = struct{}{}
		cities = append(cities, st.City)
	}

	if len(cities) == 0 {
		out := make([]string, len(fallbackCities))
		copy(out, fallbackCities)
		return out
	}
	sort.Strings(cities)
	return cities
}

// Estimate interpolates an index at c from nearby stations.
func (s *StationService) Estimate(ctx context.Context, c location.Coordinates) (StationEstimate, error) {
	if !c.Valid() {
		return StationEstimate{}, ErrInvalidCoordinates
	}

	point, err := s.interpolator.Interpolate(c, s.Stations(ctx, ""))
	if err != nil {
		return StationEstimate{}, err
	}

	values := make(map[Pollutant]float64, len(point.Values))
	for p, v := range point.Values {
		values[p] = v.Value
	}
	overall, ok := s.calc.OverallIndex(values)
	if !ok {
		return StationEstimate{}, ErrInsufficientData
	}

	return StationEstimate{
		Coordinates:       c,
		Index:             overall.Index,
		DominantPollutant: overall.Dominant,
		Level:             LevelFor(overall.Index).Name,
		Confidence:        point.Values[overall.Dominant].Confidence,
		Values:            point.Values,
	}, nil
}

// Healthy reports whether the records upstream answers a one-record probe.
func (s *StationService) Healthy(ctx context.Context) bool {
	if s.provider == nil || !s.provider.Configured() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := s.provider.Probe(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("station records probe failed")
		return false
	}
	return true
}

// GroupRecords folds per-pollutant records into stations keyed by
// station, city and state, in first-seen order.
func GroupRecords(records []StationRecord, calc *Calculator) []Station {
	if calc == nil {
		calc = NewCalculator()
	}

	index := make(map[string]int)
	var stations []Station

	for _, rec := range records {
		key := rec.Station + "|" + rec.City + "|" + rec.State
		pos, ok := index[key]
		if !ok {
			pos = len(stations)
			index[key] = pos
			stations = append(stations, Station{
				ID:         key,
				Name:       rec.Station,
				City:       rec.City,
				State:      rec.State,
				Agency:     rec.Agency,
				Pollutants: make(map[Pollutant]PollutantStats),
			})
		}
		st := &stations[pos]

		if st.Coordinates == nil {
			st.Coordinates = parseCoordinates(rec.Latitude, rec.Longitude)
		}
		if ts, err := time.ParseInLocation(recordTimeLayout, strings.TrimSpace(rec.LastUpdate), indiaStandardTime); err == nil && ts.After(st.LastUpdate) {
			st.LastUpdate = ts
		}

		p, known := recordPollutants[strings.ToUpper(strings.TrimSpace(rec.PollutantID))]
		if !known {
			continue
		}
		avg, ok := parseValue(rec.Avg)
		if !ok {
			continue
		}
		minV, _ := parseValue(rec.Min)
		maxV, _ := parseValue(rec.Max)
		st.Pollutants[p] = PollutantStats{Min: minV, Max: maxV, Avg: avg, Unit: rec.Unit}
	}

	for idx := range stations {
		st := &stations[idx]
		if overall, ok := calc.OverallIndex(st.Averages()); ok {
			st.Index = overall.Index
			st.DominantPollutant = overall.Dominant
		}
		st.Level = LevelFor(st.Index).Name
	}
	return stations
}

func parseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "NA") {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseCoordinates(lat, lng string) *location.Coordinates {
	la, ok1 := parseValue(lat)
	lo, ok2 := parseValue(lng)
	if !ok1 || !ok2 {
		return nil
	}
	c := location.Coordinates{Lat: la, Lng: lo}
	if !c.Valid() {
		return nil
	}
	return &c
}

// CacheStats returns the station cache counters.
func (s *StationService) CacheStats() cache.Stats {
	return s.cache.Stats()
}
