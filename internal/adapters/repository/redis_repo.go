package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"learning-web/internal/core/ports"
)

// Ensure RedisContentCache implements ContentCache
var _ ports.ContentCache = (*RedisContentCache)(nil)

// RedisContentCache shares file bodies between server instances.
// Expiry is delegated to Redis TTLs, so no watchdog sweep is needed.
type RedisContentCache struct {
	client *redis.Client
}

// NewRedisContentCache creates a new Redis-backed cache
func NewRedisContentCache(client *redis.Client) *RedisContentCache {
	return &RedisContentCache{
		client: client,
	}
}

// Get fetches a body; redis.Nil is a plain miss
func (r *RedisContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := r.client.Get(ctx, buildContentKey(key)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get cached content: %w", err)
	}

	return body, true, nil
}

// Set stores a body with TTL (SET key value EX ttl)
func (r *RedisContentCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, buildContentKey(key), body, ttl).Err(); err != nil {
		return fmt.Errorf("set cached content: %w", err)
	}

	slog.Debug("Content cached in Redis",
		"key", key,
		"bytes", len(body),
		"ttl", ttl,
	)

	return nil
}

// buildContentKey namespaces cache keys: content:{path@mtime}
func buildContentKey(key string) string {
	return fmt.Sprintf("content:%s", key)
}
