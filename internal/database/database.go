// Package database opens the PostgreSQL pool behind the shared cache backend.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config describes how to reach PostgreSQL. URL, when set, is used as is and
// the individual parts are ignored.
type Config struct {
	URL string

	Host     string
	Port     int `validate:"min=1,max=65535"`
	User     string
	Password string
	Database string
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	MaxConns        int `validate:"min=1"`
	MinConns        int `validate:"min=0,ltefield=MaxConns"`
	ConnMaxLifetime time.Duration
}

// DSN returns the connection URL, escaping credentials built from parts.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}).String()
}

// Connect opens a pool sized from cfg and pings it once.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns) //nolint:gosec // validated
	}
	poolConfig.MinConns = int32(cfg.MinConns) //nolint:gosec // validated
	if cfg.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
