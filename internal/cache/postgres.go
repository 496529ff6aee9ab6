package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV is a KV stored in a PostgreSQL table, for deployments that run
// several API instances against one shared cache.
type PostgresKV struct {
	pool *pgxpool.Pool
}

// NewPostgresKV creates a PostgreSQL KV.
func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

// EnsureSchema creates the cache table if it does not exist.
func (p *PostgresKV) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := p.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating cache_entries: %w", err)
	}
	return nil
}

// Get implements KV.
func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM cache_entries
		WHERE key = $1
	`

	var value []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set implements KV.
func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO cache_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

// Delete implements KV.
func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM cache_entries
		WHERE key = $1
	`
	_, err := p.pool.Exec(ctx, query, key)
	return err
}

// Ping verifies the backing database is reachable.
func (p *PostgresKV) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
