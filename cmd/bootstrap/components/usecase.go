package components

import (
	"log/slog"

	"interview-availability/internal/pkg/config"
	"interview-availability/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	NewSettings,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewScheduleQueries,
	),
)

func NewSettings(cfg config.Config, logger *slog.Logger) (queries.Settings, error) {
	loc, err := cfg.Availability.Location()
	if err != nil {
		return queries.Settings{}, err
	}
	slot, err := cfg.Availability.SlotDuration()
	if err != nil {
		return queries.Settings{}, err
	}
	logger.Info("availability settings loaded", "tz", loc.String(), "slot_minutes", cfg.Availability.SlotMinutes)
	return queries.Settings{Location: loc, SlotDuration: slot}, nil
}
