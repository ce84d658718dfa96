package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no blob exists for the key.
// Callers treat it as "empty collection", not as a failure.
var ErrKeyNotFound = errors.New("key not found")

// KV is the byte-blob key-value boundary behind every domain repository.
// Values are written in full on every mutation; there is no delta encoding.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
