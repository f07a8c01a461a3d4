package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps every store under a single app_kv table
// (see migrations/). One row per storage key.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and pings it.
func NewPostgres(ctx context.Context, databaseURL string) (*PostgresBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresBackend{pool: pool}, nil
}

func (p *PostgresBackend) Read(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM app_kv WHERE key = $1`

	var value string
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *PostgresBackend) Write(ctx context.Context, key string, value string) error {
	const query = `
		INSERT INTO app_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`

	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

func (p *PostgresBackend) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM app_kv WHERE key = $1`

	_, err := p.pool.Exec(ctx, query, key)
	return err
}

func (p *PostgresBackend) Close() error {
	p.pool.Close()
	return nil
}
