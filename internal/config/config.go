// Package config loads AirScope settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/database"
)

// Cache backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds every service setting.
type Config struct {
	Port     int    `validate:"min=1,max=65535"`
	Env      string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info warn error"`

	WAQI    WAQIConfig
	DataGov DataGovConfig
	Cache   CacheConfig
	Warmup  WarmupConfig
	PubSub  PubSubConfig
	OTel    OTelConfig

	Database database.Config

	// GazetteerExtraFile is an optional YAML file of extra gazetteer entries.
	GazetteerExtraFile string

	// AdminJWTSigningKey enables the admin endpoints when set.
	AdminJWTSigningKey string

	// RequireTLS rejects requests a proxy marks as plain HTTP.
	RequireTLS bool

	// SyntheticSeed seeds synthetic readings. Zero seeds from the clock.
	SyntheticSeed int64
}

// WAQIConfig configures the primary reading upstream.
type WAQIConfig struct {
	BaseURL        string        `validate:"required,url"`
	Token          string
	ReadingTimeout time.Duration `validate:"gt=0"`
	SearchTimeout  time.Duration `validate:"gt=0"`
	RateLimit      float64       `validate:"gte=0"`
}

// DataGovConfig configures the government records upstream.
type DataGovConfig struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
}

// CacheConfig selects the cache backend and its freshness windows.
type CacheConfig struct {
	Backend    string        `validate:"oneof=memory sqlite postgres"`
	SQLitePath string        `validate:"required_if=Backend sqlite"`
	TTL        time.Duration `validate:"gt=0"`
	StationTTL time.Duration `validate:"gt=0"`
}

// WarmupConfig schedules the popular-city warm-up job.
type WarmupConfig struct {
	Interval    time.Duration `validate:"gt=0"`
	Concurrency int           `validate:"min=1,max=32"`
}

// PubSubConfig enables the on-demand worker trigger when both fields are set.
type PubSubConfig struct {
	ProjectID    string
	Subscription string
}

// Enabled reports whether a subscription is configured.
func (p PubSubConfig) Enabled() bool {
	return p.ProjectID != "" && p.Subscription != ""
}

// OTelConfig configures OpenTelemetry export.
type OTelConfig struct {
	Enabled  bool
	Endpoint string
}

// Load reads .env (when present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	p := &parser{}

	cfg := &Config{
		Port:     p.int("APP_PORT", 8080),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		WAQI: WAQIConfig{
			BaseURL:        envOrDefault("WAQI_BASE_URL", "https://api.waqi.info"),
			Token:          strings.TrimSpace(os.Getenv("WAQI_TOKEN")),
			ReadingTimeout: p.duration("WAQI_READING_TIMEOUT", 8*time.Second),
			SearchTimeout:  p.duration("WAQI_SEARCH_TIMEOUT", 3*time.Second),
			RateLimit:      p.float("WAQI_RATE_LIMIT", 1),
		},
		DataGov: DataGovConfig{
			BaseURL: envOrDefault("DATAGOV_BASE_URL", "https://api.data.gov.in/resource/7c3c0e24-d74a-4ee8-922e-43509f20c1cf"),
			APIKey:  strings.TrimSpace(os.Getenv("DATAGOV_API_KEY")),
			Timeout: p.duration("DATAGOV_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			Backend:    strings.ToLower(envOrDefault("CACHE_BACKEND", BackendMemory)),
			SQLitePath: envOrDefault("CACHE_SQLITE_PATH", "./data/airscope.db"),
			TTL:        p.duration("CACHE_TTL", 15*time.Minute),
			StationTTL: p.duration("STATION_CACHE_TTL", 5*time.Minute),
		},
		Warmup: WarmupConfig{
			Interval:    p.duration("WARMUP_INTERVAL", 15*time.Minute),
			Concurrency: p.int("WARMUP_CONCURRENCY", 3),
		},
		PubSub: PubSubConfig{
			ProjectID:    os.Getenv("PUBSUB_PROJECT_ID"),
			Subscription: os.Getenv("PUBSUB_SUBSCRIPTION"),
		},
		OTel: OTelConfig{
			Enabled:  p.bool("OTEL_ENABLED", false),
			Endpoint: envOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
		Database: database.Config{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            envOrDefault("DB_HOST", "localhost"),
			Port:            p.int("DB_PORT", 5432),
			User:            envOrDefault("DB_USER", "airscope"),
			Password:        envOrDefault("DB_PASSWORD", "localdev"),
			Database:        envOrDefault("DB_NAME", "airscope"),
			SSLMode:         envOrDefault("DB_SSL_MODE", "disable"),
			MaxConns:        p.int("DB_MAX_CONNS", 10),
			MinConns:        p.int("DB_MIN_CONNS", 1),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		GazetteerExtraFile: os.Getenv("GAZETTEER_EXTRA_FILE"),
		AdminJWTSigningKey: os.Getenv("ADMIN_JWT_SIGNING_KEY"),
		RequireTLS:         p.bool("REQUIRE_TLS", false),
		SyntheticSeed:      p.int64("SYNTHETIC_SEED", 0),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Level returns the zerolog level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// NewLogger builds the service logger the entrypoints share.
func (c *Config) NewLogger(service, version string) zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(c.Level()).
		With().
		Timestamp().
		Str("service", service).
		Str("version", version).
		Str("env", c.Env).
		Logger()
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// parser collects every malformed variable instead of stopping at the first.
type parser struct {
	errs []error
}

func (p *parser) fail(key, raw string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
}

func (p *parser) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return n
}

func (p *parser) int64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return n
}

func (p *parser) float(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return f
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return d
}

func (p *parser) bool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return b
}
