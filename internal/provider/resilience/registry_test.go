package resilience_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/provider/resilience"
)

func TestRegistry_RegisterAndGetHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	cfg := resilience.DefaultClientConfig("waqi")
	cfg.Registry = registry

	client := resilience.NewClient(cfg)
	assert.Equal(t, 1, registry.ProviderCount())
	assert.Equal(t, "waqi", client.Name())

	health := registry.GetHealth("waqi")
	require.NotNil(t, health)
	assert.Equal(t, gobreaker.StateClosed, health.CircuitState)
	assert.True(t, health.IsHealthy())
	assert.Equal(t, resilience.StatusHealthy, health.Status())
	assert.Nil(t, health.LastSuccessAt)
	assert.Nil(t, registry.GetHealth("datagov"))
}

func TestRegistry_Unregister(t *testing.T) {
	registry := resilience.NewRegistry()
	cfg := resilience.DefaultClientConfig("waqi")
	cfg.Registry = registry
	_ = resilience.NewClient(cfg)

	registry.Unregister("waqi")
	assert.Equal(t, 0, registry.ProviderCount())
	assert.Nil(t, registry.GetHealth("waqi"))
}

func TestRegistry_RecordOutcomes(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC))
	registry := resilience.NewRegistryWithClock(clock)
	cfg := resilience.DefaultClientConfig("datagov")
	cfg.Registry = registry
	_ = resilience.NewClient(cfg)

	registry.RecordSuccess("datagov")
	clock.Advance(time.Minute)
	registry.RecordFailure("datagov", errors.New("connection reset"))
	registry.RecordSuccess("unknown")

	health := registry.GetHealth("datagov")
	require.NotNil(t, health.LastSuccessAt)
	require.NotNil(t, health.LastFailureAt)
	assert.Equal(t, time.Minute, health.LastFailureAt.Sub(*health.LastSuccessAt))
	assert.Equal(t, "connection reset", health.LastError)
}

func TestRegistry_ClientRecordsAutomatically(t *testing.T) {
	status := http.StatusOK
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	defer server.Close()

	registry := resilience.NewRegistry()
	client := resilience.NewClient(resilience.ClientConfig{Name: "waqi", Registry: registry})

	do := func() {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	do()
	health := registry.GetHealth("waqi")
	assert.NotNil(t, health.LastSuccessAt)
	assert.Nil(t, health.LastFailureAt)

	status = http.StatusBadGateway
	do()
	health = registry.GetHealth("waqi")
	assert.NotNil(t, health.LastFailureAt)
	assert.Contains(t, health.LastError, "Bad Gateway")
}

func TestRegistry_GetAllHealthSorted(t *testing.T) {
	registry := resilience.NewRegistry()
	for _, name := range []string{"waqi", "datagov", "nominatim"} {
		cfg := resilience.DefaultClientConfig(name)
		cfg.Registry = registry
		_ = resilience.NewClient(cfg)
	}

	all := registry.GetAllHealth()
	require.Len(t, all, 3)
	assert.Equal(t, "datagov", all[0].Name)
	assert.Equal(t, "nominatim", all[1].Name)
	assert.Equal(t, "waqi", all[2].Name)
	assert.Equal(t, []string{"datagov", "nominatim", "waqi"}, registry.GetProviderNames())
}

func TestProviderHealth_Status(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  string
	}{
		{gobreaker.StateClosed, resilience.StatusHealthy},
		{gobreaker.StateHalfOpen, resilience.StatusDegraded},
		{gobreaker.StateOpen, resilience.StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h := &resilience.ProviderHealth{CircuitState: tt.state}
			assert.Equal(t, tt.want, h.Status())
		})
	}
}
