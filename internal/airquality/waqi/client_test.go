package waqi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/airquality/waqi"
	"github.com/airscope/airscope/internal/location"
	"github.com/airscope/airscope/internal/provider/resilience"
)

const testToken = "0123456789abcdef"

const mumbaiFeed = `{
	"status": "ok",
	"data": {
		"aqi": 142,
		"idx": 12454,
		"dominentpol": "pm10",
		"city": {"geo": [19.0728, 72.8826], "name": "Mumbai, Maharashtra, India", "url": "https://aqicn.org/city/india/mumbai"},
		"iaqi": {"pm10": {"v": 142}, "pm25": {"v": 88}, "no2": {"v": 12.5}, "t": {"v": 29}, "h": {"v": 71}, "dew": {"v": 23}},
		"time": {"s": "2025-03-01 14:30:00", "tz": "+05:30", "v": 1740819600}
	}
}`

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newClient(baseURL string) *waqi.Client {
	return waqi.NewClient(waqi.ClientConfig{
		BaseURL:    baseURL,
		Token:      testToken,
		HTTPClient: http.DefaultClient,
	})
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, waqi.NewClient(waqi.ClientConfig{Token: testToken}).Configured())
	assert.False(t, waqi.NewClient(waqi.ClientConfig{Token: "short"}).Configured())
	assert.False(t, waqi.NewClient(waqi.ClientConfig{Token: "   "}).Configured())
}

func TestClient_ReadingByName(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/Navi Mumbai/", r.URL.Path)
		assert.Equal(t, testToken, r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mumbaiFeed))
	})

	reading, err := newClient(server.URL).ReadingByName(context.Background(), "Navi Mumbai")
	require.NoError(t, err)

	assert.Equal(t, 142, reading.Index)
	assert.Equal(t, airquality.PollutantPM10, reading.DominantPollutant)
	assert.Equal(t, "Mumbai, Maharashtra, India", reading.LocationName)
	assert.Equal(t, "https://aqicn.org/city/india/mumbai", reading.Attribution)
	assert.Equal(t, location.Coordinates{Lat: 19.0728, Lng: 72.8826}, reading.Coordinates)
	assert.Equal(t, time.Unix(1740819600, 0).UTC(), reading.MeasuredAt)

	assert.Len(t, reading.Concentrations, 3)
	assert.Equal(t, 12.5, reading.Concentrations[airquality.PollutantNO2])
	assert.Equal(t, map[string]float64{"t": 29, "h": 71, "dew": 23}, reading.Weather)
}

func TestClient_ReadingByCoordinates(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/geo:19.1136;72.8697/", r.URL.Path)
		_, _ = w.Write([]byte(mumbaiFeed))
	})

	reading, err := newClient(server.URL).ReadingByCoordinates(context.Background(),
		location.Coordinates{Lat: 19.1136, Lng: 72.8697})
	require.NoError(t, err)
	assert.Equal(t, 142, reading.Index)
}

func TestClient_Decode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantIndex    int
		wantDominant airquality.Pollutant
		wantTime     time.Time
	}{
		{
			name:         "non-numeric aqi is computed from pollutants",
			body:         `{"status":"ok","data":{"aqi":"-","iaqi":{"pm25":{"v":35},"pm10":{"v":10}},"city":{"name":"Delhi"}}}`,
			wantIndex:    58,
			wantDominant: airquality.PollutantPM25,
		},
		{
			name:         "numeric string aqi",
			body:         `{"status":"ok","data":{"aqi":"87","dominentpol":"o3","city":{"name":"Pune"}}}`,
			wantIndex:    87,
			wantDominant: airquality.PollutantO3,
		},
		{
			name:         "unknown dominant falls back to the calculator",
			body:         `{"status":"ok","data":{"aqi":60,"dominentpol":"benzene","iaqi":{"pm10":{"v":50}},"city":{"name":"Agra"}}}`,
			wantIndex:    60,
			wantDominant: airquality.PollutantPM10,
		},
		{
			name:      "huge aqi is clamped to the top of the scale",
			body:      `{"status":"ok","data":{"aqi":1e19,"city":{"name":"Delhi"}}}`,
			wantIndex: 500,
		},
		{
			name:      "negative aqi is clamped to zero",
			body:      `{"status":"ok","data":{"aqi":-40,"city":{"name":"Delhi"}}}`,
			wantIndex: 0,
		},
		{
			name:         "non-finite aqi string is computed from pollutants",
			body:         `{"status":"ok","data":{"aqi":"NaN","iaqi":{"pm25":{"v":35}},"city":{"name":"Delhi"}}}`,
			wantIndex:    58,
			wantDominant: airquality.PollutantPM25,
		},
		{
			name:         "local time string when unix time is missing",
			body:         `{"status":"ok","data":{"aqi":40,"city":{"name":"Goa"},"time":{"s":"2025-03-01 14:30:00","tz":"+05:30"}}}`,
			wantIndex:    40,
			wantTime:     time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			reading, err := newClient(server.URL).ReadingByName(context.Background(), "x")
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, reading.Index)
			assert.Equal(t, tt.wantDominant, reading.DominantPollutant)
			assert.True(t, tt.wantTime.Equal(reading.MeasuredAt), "got %v", reading.MeasuredAt)
		})
	}
}

func TestClient_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind airquality.ErrorKind
	}{
		{"error envelope", http.StatusOK, `{"status":"error","data":"Unknown station"}`, airquality.KindUpstreamStatus},
		{"missing data", http.StatusOK, `{"status":"ok"}`, airquality.KindUpstreamStatus},
		{"non-200", http.StatusBadRequest, `{}`, airquality.KindUpstreamStatus},
		{"no usable index", http.StatusOK, `{"status":"ok","data":{"aqi":"-","city":{"name":"Nowhere"}}}`, airquality.KindEmptyResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := newClient(server.URL).ReadingByName(context.Background(), "x")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, airquality.KindOf(err))
		})
	}
}

func TestClient_ErrorEnvelopeMessage(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","data":"Invalid key"}`))
	})
	_, err := newClient(server.URL).ReadingByName(context.Background(), "x")
	assert.ErrorContains(t, err, "Invalid key")
}

func TestClient_Timeout(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := newClient(server.URL).ReadingByName(ctx, "x")
	require.Error(t, err)
	assert.Equal(t, airquality.KindTimeout, airquality.KindOf(err))
}

func TestClient_UnconfiguredMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	server := newServer(t, func(_ http.ResponseWriter, _ *http.Request) { calls.Add(1) })

	client := waqi.NewClient(waqi.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})
	_, err := client.ReadingByName(context.Background(), "Delhi")
	assert.Equal(t, airquality.KindConfig, airquality.KindOf(err))
	_, err = client.SearchStations(context.Background(), "Delhi")
	assert.Equal(t, airquality.KindConfig, airquality.KindOf(err))
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_SearchStations(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/", r.URL.Path)
		assert.Equal(t, "bandra", r.URL.Query().Get("keyword"))
		_, _ = w.Write([]byte(`{"status":"ok","data":[
			{"uid":1,"aqi":"88","station":{"name":"Bandra, Mumbai, India","geo":[19.06,72.83]}},
			{"uid":2,"aqi":"-","station":{"name":""}},
			{"uid":3,"aqi":"91","station":{"name":"Bandra Kurla Complex, Mumbai, India","geo":[19.07,72.86]}}
		]}`))
	})

	hits, err := newClient(server.URL).SearchStations(context.Background(), "bandra")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Bandra, Mumbai, India", hits[0].Name)
	assert.Equal(t, location.Coordinates{Lat: 19.06, Lng: 72.83}, hits[0].Coordinates)
}

func TestClient_SearchStationsEmpty(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":[]}`))
	})
	_, err := newClient(server.URL).SearchStations(context.Background(), "zzz")
	assert.Equal(t, airquality.KindEmptyResult, airquality.KindOf(err))
}

func TestClient_DefaultTransportRecordsHealth(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(mumbaiFeed))
	})
	registry := resilience.NewRegistry()
	client := waqi.NewClient(waqi.ClientConfig{BaseURL: server.URL, Token: testToken, Registry: registry})

	_, err := client.ReadingByName(context.Background(), "Mumbai")
	require.NoError(t, err)

	health := registry.GetHealth(waqi.ProviderName)
	require.NotNil(t, health)
	assert.NotNil(t, health.LastSuccessAt)
}
