package bootstrap

import (
	"context"
	"log/slog"

	"interview-availability/internal/infra/cache"
	"interview-availability/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns a nil client when REDIS_ENABLED is false.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		logger.Info("template cache disabled")
		return nil, nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("template cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TemplateTTL)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
