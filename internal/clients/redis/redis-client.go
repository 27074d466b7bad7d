package redis_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// New returns nil when the cache is disabled.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*redis.Client, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	cl := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.Db,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cl.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis ping %s: %w", cfg.Cache.Addr, err)
			}
			log.Info("redis connected", "addr", cfg.Cache.Addr)
			return nil
		},
		OnStop: func(context.Context) error {
			return cl.Close()
		},
	})

	return cl, nil
}
