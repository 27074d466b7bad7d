package mapping_cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores results as JSON. Cache failures are logged and treated
// as misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

var _ app.MappingCache = &RedisCache{}

func NewRedis(client *redis.Client, ttl time.Duration, log *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) (app.MappingResult, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("redis cache get", "key", key, "error", err)
		}
		return app.MappingResult{}, false
	}

	var r app.MappingResult
	if err := json.Unmarshal(b, &r); err != nil {
		c.log.Warn("redis cache entry is corrupt", "key", key, "error", err)
		return app.MappingResult{}, false
	}
	return r, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result app.MappingResult) {
	b, err := json.Marshal(result)
	if err != nil {
		c.log.Warn("redis cache marshal", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("redis cache set", "key", key, "error", err)
	}
}
