package bootstrap

import (
	"context"

	"slotdesk/internal/infra/cache"
	"slotdesk/internal/pkg/config"
	"slotdesk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewAvailabilityCache(cfg config.Config, client *redis.Client) queries.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
}
