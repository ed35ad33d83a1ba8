package components

import (
	"interview-availability/internal/handler"
	"interview-availability/internal/handler/api"
	"interview-availability/internal/infra/cache"
	"interview-availability/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewScheduleHandler,
		api.NewHealthHandler,
		NewReadinessChecks,
	),
	fx.Invoke(handler.NewRouter),
)

func NewReadinessChecks(pool *pgxpool.Pool, client *redis.Client) []api.ReadinessCheck {
	checks := []api.ReadinessCheck{
		{Name: "postgres", Check: db.ReadyCheck(pool)},
	}
	if client != nil {
		checks = append(checks, api.ReadinessCheck{Name: "redis", Check: cache.ReadyCheck(client)})
	}
	return checks
}
