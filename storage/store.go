package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
// Callers treat it as "first run" for a collection, not as a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence port every repository depends on. Values are
// opaque byte strings; encoding is the caller's business.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
