package datagov_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/airquality/datagov"
)

func recordsPage(total, offset, n int) map[string]interface{} {
	records := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, map[string]string{
			"country":        "India",
			"state":          "Delhi",
			"city":           "Delhi",
			"station":        fmt.Sprintf("Station %d", offset+i),
			"last_update":    "15-03-2025 10:00:00",
			"latitude":       "28.6508",
			"longitude":      "77.3152",
			"pollutant_id":   "PM2.5",
			"pollutant_min":  "12",
			"pollutant_max":  "88",
			"pollutant_avg":  "35",
			"pollutant_unit": "µg/m³",
		})
	}
	return map[string]interface{}{
		"status":  "ok",
		"total":   total,
		"count":   n,
		"limit":   "100",
		"offset":  strconv.Itoa(offset),
		"records": records,
	}
}

func TestClient_RecordsPaginates(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api-key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "2", q.Get("limit"))

		offset, _ := strconv.Atoi(q.Get("offset"))
		n := min(2, 5-offset)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recordsPage(5, offset, n))
	}))
	defer server.Close()

	client := datagov.NewClient(datagov.ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		HTTPClient: http.DefaultClient,
		PageSize:   2,
	})

	records, err := client.Records(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, int32(3), calls.Load())

	first := records[0]
	assert.Equal(t, "Station 0", first.Station)
	assert.Equal(t, "PM2.5", first.PollutantID)
	assert.Equal(t, "35", first.Avg)
	assert.Equal(t, "28.6508", first.Latitude)
	assert.Equal(t, "µg/m³", first.Unit)
}

func TestClient_RecordsStopsAtMaxRecords(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		_ = json.NewEncoder(w).Encode(recordsPage(5000, offset, limit))
	}))
	defer server.Close()

	client := datagov.NewClient(datagov.ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		HTTPClient: http.DefaultClient,
	})

	records, err := client.Records(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, records, datagov.DefaultMaxRecords)
	assert.Equal(t, int32(10), calls.Load())
}

func TestClient_RecordsCityFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Navi Mumbai", r.URL.Query().Get("filters[city]"))
		_ = json.NewEncoder(w).Encode(recordsPage(1, 0, 1))
	}))
	defer server.Close()

	client := datagov.NewClient(datagov.ClientConfig{BaseURL: server.URL, APIKey: "k", HTTPClient: http.DefaultClient})
	// Punctuation is stripped before filtering.
	_, err := client.Records(context.Background(), "Navi Mumbai!")
	require.NoError(t, err)
}

func TestClient_RecordsFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind airquality.ErrorKind
	}{
		{"non-200", http.StatusForbidden, `{"message":"invalid key"}`, airquality.KindUpstreamStatus},
		{"error status", http.StatusOK, `{"status":"error","message":"Invalid API key"}`, airquality.KindUpstreamStatus},
		{"no records", http.StatusOK, `{"status":"ok","total":0,"records":[]}`, airquality.KindEmptyResult},
		{"malformed", http.StatusOK, `{"records": [`, airquality.KindTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := datagov.NewClient(datagov.ClientConfig{BaseURL: server.URL, APIKey: "k", HTTPClient: http.DefaultClient})
			_, err := client.Records(context.Background(), "")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, airquality.KindOf(err))
		})
	}
}

func TestClient_Unconfigured(t *testing.T) {
	client := datagov.NewClient(datagov.ClientConfig{})
	assert.False(t, client.Configured())

	_, err := client.Records(context.Background(), "Delhi")
	assert.Equal(t, airquality.KindConfig, airquality.KindOf(err))
	assert.Equal(t, airquality.KindConfig, airquality.KindOf(client.Probe(context.Background())))
}

func TestClient_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(recordsPage(900, 0, 1))
	}))
	defer server.Close()

	client := datagov.NewClient(datagov.ClientConfig{BaseURL: server.URL, APIKey: "k", HTTPClient: http.DefaultClient})
	assert.NoError(t, client.Probe(context.Background()))
}

func TestClient_FeedsStationService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(recordsPage(2, 0, 2))
	}))
	defer server.Close()

	client := datagov.NewClient(datagov.ClientConfig{BaseURL: server.URL, APIKey: "k", HTTPClient: http.DefaultClient})
	service := airquality.NewStationService(airquality.StationServiceConfig{Provider: client})

	stations := service.Stations(context.Background(), "Delhi")
	require.Len(t, stations, 2)
	assert.Equal(t, 58, stations[0].Index)
	assert.Equal(t, airquality.PollutantPM25, stations[0].DominantPollutant)
}
