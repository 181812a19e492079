package store

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Backend selects the local storage implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Options configures OpenLocal.
type Options struct {
	Backend     Backend
	Path        string // SQLite file; empty uses DefaultDBPath
	RedisURL    string
	RedisPrefix string
	Logger      *zap.Logger // receives redis client messages; nil discards them
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLocal opens the persistent KV selected by opts. The returned Closer
// releases the backing connection.
func OpenLocal(ctx context.Context, opts Options) (KV, io.Closer, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		path := opts.Path
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve DB path: %w", err)
			}
			path = p
		} else if err := EnsureDir(path); err != nil {
			return nil, nil, fmt.Errorf("create DB dir: %w", err)
		}
		s, err := Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s.Local(), s, nil

	case BackendRedis:
		SetRedisLogger(opts.Logger)
		r, err := NewRedisKV(ctx, opts.RedisURL, opts.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil

	case BackendMemory:
		return NewMemoryKV(), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
