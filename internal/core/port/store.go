package port

import "context"

// KVStore is the metadata store holding campaign records and durable state
// blobs. It is an outbound port in hexagonal architecture. Writes are
// unconditional (last writer wins); Get returns domain.ErrNotFound for
// unknown keys.
type KVStore interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the bytes last stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectStorage persists binary objects and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
