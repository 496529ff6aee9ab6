package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.waqi.info", cfg.WAQI.BaseURL)
	assert.Empty(t, cfg.WAQI.Token)
	assert.Equal(t, 8*time.Second, cfg.WAQI.ReadingTimeout)
	assert.Equal(t, 3*time.Second, cfg.WAQI.SearchTimeout)
	assert.Equal(t, 1.0, cfg.WAQI.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.DataGov.Timeout)
	assert.Equal(t, config.BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, "./data/airscope.db", cfg.Cache.SQLitePath)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StationTTL)
	assert.Equal(t, 15*time.Minute, cfg.Warmup.Interval)
	assert.Equal(t, 3, cfg.Warmup.Concurrency)
	assert.False(t, cfg.PubSub.Enabled())
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, "localhost:4317", cfg.OTel.Endpoint)
	assert.Equal(t, "airscope", cfg.Database.Database)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Empty(t, cfg.Database.URL)
	assert.Zero(t, cfg.SyntheticSeed)
	assert.False(t, cfg.RequireTLS)
}

func TestFromEnv_CustomEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WAQI_TOKEN", " abcdef0123456789 ")
	t.Setenv("WAQI_READING_TIMEOUT", "5s")
	t.Setenv("WAQI_RATE_LIMIT", "2.5")
	t.Setenv("DATAGOV_API_KEY", "gov-key")
	t.Setenv("CACHE_BACKEND", "sqlite")
	t.Setenv("CACHE_SQLITE_PATH", "/var/lib/airscope/cache.db")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("WARMUP_CONCURRENCY", "6")
	t.Setenv("PUBSUB_PROJECT_ID", "air-project")
	t.Setenv("PUBSUB_SUBSCRIPTION", "warmup-sub")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("SYNTHETIC_SEED", "42")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "abcdef0123456789", cfg.WAQI.Token)
	assert.Equal(t, 5*time.Second, cfg.WAQI.ReadingTimeout)
	assert.Equal(t, 2.5, cfg.WAQI.RateLimit)
	assert.Equal(t, "gov-key", cfg.DataGov.APIKey)
	assert.Equal(t, config.BackendSQLite, cfg.Cache.Backend)
	assert.Equal(t, "/var/lib/airscope/cache.db", cfg.Cache.SQLitePath)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 6, cfg.Warmup.Concurrency)
	assert.True(t, cfg.PubSub.Enabled())
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, int64(42), cfg.SyntheticSeed)
}

func TestFromEnv_MalformedValues(t *testing.T) {
	t.Setenv("APP_PORT", "eighty")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "lots")

	_, err := config.FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
	assert.Contains(t, err.Error(), "CACHE_TTL")
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}

func TestFromEnv_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "CACHE_BACKEND", "redis"},
		{"port out of range", "APP_PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"non-positive timeout", "WAQI_READING_TIMEOUT", "0s"},
		{"zero concurrency", "WARMUP_CONCURRENCY", "0"},
		{"bad upstream url", "WAQI_BASE_URL", "not a url"},
		{"unknown ssl mode", "DB_SSL_MODE", "sometimes"},
		{"min conns above max", "DB_MIN_CONNS", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestPubSubConfig_Enabled(t *testing.T) {
	assert.False(t, config.PubSubConfig{ProjectID: "p"}.Enabled())
	assert.True(t, config.PubSubConfig{ProjectID: "p", Subscription: "s"}.Enabled())
}
