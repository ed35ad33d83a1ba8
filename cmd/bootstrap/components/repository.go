package components

import (
	"log/slog"

	"interview-availability/internal/infra/cache"
	"interview-availability/internal/infra/db"
	"interview-availability/internal/infra/readstore"
	"interview-availability/internal/pkg/config"
	"interview-availability/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewQueries,
			fx.As(new(readstore.TemplateReadQueries)),
			fx.As(new(readstore.BookingReadQueries)),
		),
		NewTemplateReadStore,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewTemplateReadStore puts the Redis cache in front of PostgreSQL when a client is configured.
func NewTemplateReadStore(q readstore.TemplateReadQueries, dbtx db.DBTX, client *redis.Client, cfg config.Config, logger *slog.Logger) queries.TemplateReadStore {
	store := readstore.NewTemplateReadStore(q, dbtx)
	if client == nil {
		return store
	}
	return cache.NewTemplateCache(store, client, cfg.Redis, logger)
}
