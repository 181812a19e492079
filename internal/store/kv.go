package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by a KV whose backing connection has been closed.
var ErrClosed = errors.New("store closed")

// KV is a flat string key-value store with browser-storage semantics:
// a missing key is not an error, Set overwrites, Clear removes.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Clear removes key. Clearing a missing key is a no-op.
	Clear(ctx context.Context, key string) error
}
