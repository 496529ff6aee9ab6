// Package datagov provides a client for the Open Government Data (data.gov.in)
// real-time air quality resource.
package datagov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the real-time air quality resource.
	DefaultBaseURL = "https://api.data.gov.in/resource/7c3c0e24-d74a-4ee8-922e-43509f20c1cf"

	// ProviderName identifies this provider in metrics and the health registry.
	ProviderName = "datagov"

	// DefaultPageSize is the number of records requested per page.
	DefaultPageSize = 100

	// DefaultMaxRecords caps how many records one Records call collects.
	DefaultMaxRecords = 1000
)

// ClientConfig holds configuration for the data.gov.in client.
type ClientConfig struct {
	// BaseURL is the resource URL (defaults to DefaultBaseURL).
	BaseURL string

	// APIKey is the data.gov.in API key.
	APIKey string

	// HTTPClient executes requests. If nil, a resilient client is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// PageSize and MaxRecords bound pagination.
	PageSize   int
	MaxRecords int

	// Registry receives call outcomes when the default HTTP client is used.
	Registry *resilience.Registry

	// Logger receives circuit breaker transitions of the default HTTP client.
	Logger zerolog.Logger
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a data.gov.in API client. It satisfies airquality.RecordProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
	pageSize   int
	maxRecords int
}

// NewClient creates a new data.gov.in client.
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
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Registry:        cfg.Registry,
			Logger:          cfg.Logger,
		})
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxRecords := cfg.MaxRecords
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: httpClient,
		pageSize:   pageSize,
		maxRecords: maxRecords,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// API response types (from the data.gov.in API).

type recordsResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Total   flexInt      `json:"total"`
	Count   flexInt      `json:"count"`
	Records []recordData `json:"records"`
}

type recordData struct {
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Station     string `json:"station"`
	Agency      string `json:"agency"`
	LastUpdate  string `json:"last_update"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	PollutantID string `json:"pollutant_id"`
	Min         string `json:"pollutant_min"`
	Max         string `json:"pollutant_max"`
	Avg         string `json:"pollutant_avg"`
	Unit        string `json:"pollutant_unit"`
}

// flexInt decodes counts the API sends either as numbers or as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse count %q: %w", s, err)
	}
	*f = flexInt(n)
	return nil
}

var (
	errMissingKey = errors.New("data.gov.in api key missing")
	errNoRecords  = errors.New("no records")

	nonWord = regexp.MustCompile(`[^\w\s]`)
)

// Records pages through the resource until total is reached or MaxRecords
// have been collected.
func (c *Client) Records(ctx context.Context, city string) ([]airquality.StationRecord, error) {
	if !c.Configured() {
		return nil, airquality.NewProviderError(airquality.KindConfig, "records", errMissingKey)
	}

	city = strings.TrimSpace(nonWord.ReplaceAllString(city, ""))

	var all []airquality.StationRecord
	for offset := 0; offset < c.maxRecords; offset += c.pageSize {
		limit := min(c.pageSize, c.maxRecords-offset)
		page, total, err := c.fetchPage(ctx, city, limit, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)

		if len(page) < limit || offset+len(page) >= total {
			break
		}
	}

	if len(all) == 0 {
		return nil, airquality.NewProviderError(airquality.KindEmptyResult, "records", errNoRecords)
	}
	return all, nil
}

// Probe requests a single record.
func (c *Client) Probe(ctx context.Context) error {
	if !c.Configured() {
		return airquality.NewProviderError(airquality.KindConfig, "probe", errMissingKey)
	}
	_, _, err := c.fetchPage(ctx, "", 1, 0)
	return err
}

func (c *Client) fetchPage(ctx context.Context, city string, limit, offset int) ([]airquality.StationRecord, int, error) {
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if city != "" {
		q.Set("filters[city]", city)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, 0, airquality.NewProviderError(airquality.KindTransport, "records", fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, airquality.NewProviderError(airquality.KindOf(err), "records", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, 0, airquality.NewProviderError(airquality.KindUpstreamStatus, "records",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var result recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, airquality.NewProviderError(airquality.KindOf(err), "records", fmt.Errorf("decode records: %w", err))
	}
	if result.Status != "" && result.Status != "ok" {
		return nil, 0, airquality.NewProviderError(airquality.KindUpstreamStatus, "records",
			fmt.Errorf("status %q: %s", result.Status, result.Message))
	}

	records := make([]airquality.StationRecord, 0, len(result.Records))
	for _, r := range result.Records {
		records = append(records, toRecord(r))
	}
	return records, int(result.Total), nil
}

func toRecord(r recordData) airquality.StationRecord {
	return airquality.StationRecord{
		Station:     r.Station,
		City:        r.City,
		State:       r.State,
		Agency:      r.Agency,
		LastUpdate:  r.LastUpdate,
		PollutantID: r.PollutantID,
		Min:         r.Min,
		Max:         r.Max,
		Avg:         r.Avg,
		Unit:        r.Unit,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}
