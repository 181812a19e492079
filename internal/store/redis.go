package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisLogger routes go-redis internal messages, such as pool errors,
// to zap instead of stderr.
type redisLogger struct {
	logger *zap.Logger
}

func (l redisLogger) Printf(_ context.Context, format string, v ...any) {
	l.logger.Warn("redis", zap.String("msg", fmt.Sprintf(format, v...)))
}

// SetRedisLogger installs logger as the process-wide go-redis logger.
// A nil logger discards the messages.
func SetRedisLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	redis.SetLogger(redisLogger{logger: logger})
}

// RedisKV implements KV on a Redis/Dragonfly server. Keys are namespaced
// by prefix so several installs can share one server.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// ParseRedisURL validates a Redis connection URL.
func ParseRedisURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return opts, nil
}

// NewRedisKV connects to url and verifies the connection with a ping.
func NewRedisKV(ctx context.Context, url, prefix string) (*RedisKV, error) {
	opts, err := ParseRedisURL(url)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisKV{client: client, prefix: prefix}, nil
}

func (r *RedisKV) key(k string) string {
	return r.prefix + k
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Clear(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("clear %q: %w", key, err)
	}
	return nil
}

// Close shuts down the redis client.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
