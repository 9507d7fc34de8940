package kv

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool      *pgxpool.Pool
	namespace string
	logger    *log.Logger
}

// NewPostgres returns a Repository backed by the kv_entries table. Keys are
// scoped to namespace so several storefront processes can share a database.
func NewPostgres(pool *pgxpool.Pool, namespace string, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, namespace: namespace, logger: logger}
}

func (r *postgresRepo) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `
SELECT value
FROM kv_entries
WHERE namespace = $1 AND key = $2
`
	var value string
	if err := r.pool.QueryRow(ctx, q, r.namespace, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		r.logger.Printf("kv repo: get namespace=%s key=%s error=%v", r.namespace, key, err)
		return "", false, err
	}
	return value, true, nil
}

func (r *postgresRepo) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO kv_entries (namespace, key, value)
VALUES ($1, $2, $3)
ON CONFLICT (namespace, key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, r.namespace, key, value); err != nil {
		r.logger.Printf("kv repo: set namespace=%s key=%s error=%v", r.namespace, key, err)
		return err
	}
	return nil
}

func (r *postgresRepo) Remove(ctx context.Context, key string) error {
	const q = `
DELETE FROM kv_entries
WHERE namespace = $1 AND key = $2
`
	if _, err := r.pool.Exec(ctx, q, r.namespace, key); err != nil {
		r.logger.Printf("kv repo: remove namespace=%s key=%s error=%v", r.namespace, key, err)
		return err
	}
	return nil
}
