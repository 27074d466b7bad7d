package mapping_cache

import (
	"log/slog"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/redis/go-redis/v9"
)

// New picks Redis when a client is configured and the in-process cache otherwise.
func New(cfg *config.Config, client *redis.Client, log *slog.Logger) app.MappingCache {
	if client == nil {
		return NewMemory(cfg.Cache.Ttl)
	}
	return NewRedis(client, cfg.Cache.Ttl, log)
}
