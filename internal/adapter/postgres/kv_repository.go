package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campaign-wizard/internal/core/domain"
)

// Querier is the subset of *pgxpool.Pool used by KVRepository.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVRepository implements port.KVStore on the kv_store table.
type KVRepository struct {
	db Querier
}

// NewKVRepository returns a repository backed by db, usually a
// *pgxpool.Pool.
func NewKVRepository(db Querier) *KVRepository {
	return &KVRepository{db: db}
}

const upsertKV = `
        INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
            SET value = EXCLUDED.value,
                updated_at = EXCLUDED.updated_at`

const selectKV = `SELECT value FROM kv_store WHERE key = $1`

// Put stores value under key; the last writer wins.
func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.Exec(ctx, upsertKV, key, value); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key or domain.ErrNotFound.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, selectKV, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}
