// Package waqi provides a client for the World Air Quality Index feed and
// search API.
package waqi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the WAQI API.
	DefaultBaseURL = "https://api.waqi.info"

	// ProviderName identifies this provider in metrics and the health registry.
	ProviderName = "waqi"

	// MinTokenLength is the shortest token treated as a real credential.
	MinTokenLength = 10

	timeLayout = "2006-01-02 15:04:05"
)

// ClientConfig holds configuration for the WAQI client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// Token is the API token. A token shorter than MinTokenLength leaves the
	// client unconfigured.
	Token string

	// HTTPClient executes requests. If nil, a resilient client without
	// retries is created.
	HTTPClient HTTPDoer

	// Timeout bounds a single HTTP call (default: 10s). Callers usually
	// impose a tighter bound through the context.
	Timeout time.Duration

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64

	// Registry receives call outcomes when the default HTTP client is used.
	Registry *resilience.Registry

	// Logger receives circuit breaker transitions of the default HTTP client.
	Logger zerolog.Logger

	// Calculator derives the index when the feed omits a numeric one.
	Calculator *airquality.Calculator
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a WAQI API client. It satisfies airquality.ReadingProvider and
// airquality.SearchProvider.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPDoer
	calc       *airquality.Calculator
}

// NewClient creates a new WAQI client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		// A failed reading falls through to the cache chain, so no retries.
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:      ProviderName,
			Timeout:   timeout,
			RateLimit: cfg.RateLimit,
			Burst:     1,
			Registry:  cfg.Registry,
			Logger:    cfg.Logger,
		})
	}

	calc := cfg.Calculator
	if calc == nil {
		calc = airquality.NewCalculator()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      strings.TrimSpace(cfg.Token),
		httpClient: httpClient,
		calc:       calc,
	}
}

// Configured reports whether a usable token is present.
func (c *Client) Configured() bool {
	return len(c.token) >= MinTokenLength
}

// API response types (from the WAQI API).

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	AQI         json.RawMessage      `json:"aqi"`
	DominentPol string               `json:"dominentpol"`
	City        cityData             `json:"city"`
	IAQI        map[string]valueData `json:"iaqi"`
	Time        timeData             `json:"time"`
}

type cityData struct {
	Name string    `json:"name"`
	Geo  []float64 `json:"geo"`
	URL  string    `json:"url"`
}

type valueData struct {
	V float64 `json:"v"`
}

type timeData struct {
	S  string `json:"s"`
	TZ string `json:"tz"`
	V  int64  `json:"v"`
}

type searchData struct {
	UID     int      `json:"uid"`
	AQI     string   `json:"aqi"`
	Station cityData `json:"station"`
}

// ReadingByName fetches the live feed for a search term.
func (c *Client) ReadingByName(ctx context.Context, term string) (airquality.Reading, error) {
	if !c.Configured() {
		return airquality.Reading{}, airquality.NewProviderError(airquality.KindConfig, "feed", errMissingToken)
	}
	endpoint := fmt.Sprintf("%s/feed/%s/?token=%s", c.baseURL, url.PathEscape(term), url.QueryEscape(c.token))
	return c.fetchFeed(ctx, endpoint)
}

// ReadingByCoordinates fetches the live feed for the station nearest c.
func (c *Client) ReadingByCoordinates(ctx context.Context, coords location.Coordinates) (airquality.Reading, error) {
	if !c.Configured() {
		return airquality.Reading{}, airquality.NewProviderError(airquality.KindConfig, "feed", errMissingToken)
	}
	endpoint := fmt.Sprintf("%s/feed/geo:%s;%s/?token=%s", c.baseURL,
		strconv.FormatFloat(coords.Lat, 'f', -1, 64),
		strconv.FormatFloat(coords.Lng, 'f', -1, 64),
		url.QueryEscape(c.token))
	return c.fetchFeed(ctx, endpoint)
}

// SearchStations queries stations by keyword.
func (c *Client) SearchStations(ctx context.Context, keyword string) ([]airquality.SearchHit, error) {
	if !c.Configured() {
		return nil, airquality.NewProviderError(airquality.KindConfig, "search", errMissingToken)
	}
	q := url.Values{}
	q.Set("token", c.token)
	q.Set("keyword", keyword)

	data, err := c.get(ctx, "search", c.baseURL+"/search/?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var results []searchData
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, airquality.NewProviderError(airquality.KindUpstreamStatus, "search", fmt.Errorf("decode search results: %w", err))
	}

	hits := make([]airquality.SearchHit, 0, len(results))
	for _, r := range results {
		if r.Station.Name == "" {
			continue
		}
		hit := airquality.SearchHit{Name: r.Station.Name}
		if len(r.Station.Geo) == 2 {
			hit.Coordinates = location.Coordinates{Lat: r.Station.Geo[0], Lng: r.Station.Geo[1]}
		}
		hits = append(hits, hit)
	}
	if len(hits) == 0 {
		return nil, airquality.NewProviderError(airquality.KindEmptyResult, "search", errNoResults)
	}
	return hits, nil
}

var (
	errMissingToken = errors.New("waqi token missing or too short")
	errNoResults    = errors.New("no results")
	errNoData       = errors.New("response has no data")
	errNoIndex      = errors.New("feed has no usable index")
)

func (c *Client) fetchFeed(ctx context.Context, endpoint string) (airquality.Reading, error) {
	data, err := c.get(ctx, "feed", endpoint)
	if err != nil {
		return airquality.Reading{}, err
	}
	return c.decodeFeed(data)
}

// get performs the request and unwraps the status envelope.
func (c *Client) get(ctx context.Context, op, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, airquality.NewProviderError(airquality.KindTransport, op, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, airquality.NewProviderError(airquality.KindOf(err), op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, airquality.NewProviderError(airquality.KindUpstreamStatus, op,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, airquality.NewProviderError(airquality.KindOf(err), op, fmt.Errorf("decode response: %w", err))
	}
	if env.Status != "ok" {
		// Error envelopes carry the message as a bare string in data.
		var msg string
		if json.Unmarshal(env.Data, &msg) != nil || msg == "" {
			msg = "status " + strconv.Quote(env.Status)
		}
		return nil, airquality.NewProviderError(airquality.KindUpstreamStatus, op, errors.New(msg))
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, airquality.NewProviderError(airquality.KindUpstreamStatus, op, errNoData)
	}
	return env.Data, nil
}

// decodeFeed maps a feed payload into a Reading. The gateway owns naming,
// source tagging and cache writes.
func (c *Client) decodeFeed(data json.RawMessage) (airquality.Reading, error) {
	var feed feedData
	if err := json.Unmarshal(data, &feed); err != nil {
		return airquality.Reading{}, airquality.NewProviderError(airquality.KindUpstreamStatus, "feed", fmt.Errorf("decode feed: %w", err))
	}

	reading := airquality.Reading{
		Concentrations: make(map[airquality.Pollutant]float64),
		LocationName:   feed.City.Name,
		Attribution:    feed.City.URL,
		MeasuredAt:     feed.Time.measuredAt(),
	}
	for key, v := range feed.IAQI {
		if p, ok := airquality.ParsePollutant(key); ok {
			reading.Concentrations[p] = v.V
			continue
		}
		if reading.Weather == nil {
			reading.Weather = make(map[string]float64)
		}
		reading.Weather[key] = v.V
	}
	if len(feed.City.Geo) == 2 {
		reading.Coordinates = location.Coordinates{Lat: feed.City.Geo[0], Lng: feed.City.Geo[1]}
	}

	overall, computed := c.calc.OverallIndex(reading.Concentrations)
	index, numeric := parseIndex(feed.AQI)
	switch {
	case numeric:
		reading.Index = index
	case computed:
		reading.Index = overall.Index
	default:
		return airquality.Reading{}, airquality.NewProviderError(airquality.KindEmptyResult, "feed", errNoIndex)
	}

	if p, ok := airquality.ParsePollutant(feed.DominentPol); ok {
		reading.DominantPollutant = p
	} else if computed {
		reading.DominantPollutant = overall.Dominant
	}
	return reading, nil
}

// parseIndex accepts the aqi field as a number or numeric string. Stations
// without data report "-". Non-finite values are unusable; finite ones are
// clamped to the index scale before conversion.
func parseIndex(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		n = f
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return int(math.Round(math.Min(math.Max(n, 0), airquality.MaxIndex))), true
}

// measuredAt prefers the unix timestamp and falls back to the local string.
// A zero result lets the gateway stamp the fetch time.
func (t timeData) measuredAt() time.Time {
	if t.V > 0 {
		return time.Unix(t.V, 0).UTC()
	}
	if t.S == "" {
		return time.Time{}
	}
	loc := time.UTC
	if t.TZ != "" {
		if offset, err := time.Parse("-07:00", t.TZ); err == nil {
			_, secs := offset.Zone()
			loc = time.FixedZone(t.TZ, secs)
		}
	}
	parsed, err := time.ParseInLocation(timeLayout, t.S, loc)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
