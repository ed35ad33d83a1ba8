package queries

import (
	"context"
	"strings"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/pkg/errs"
)

type WeeklySchedule struct {
	ResourceID string
	TimeZone   string
	Days       []availability.DayTemplate
}

type ScheduleQueries interface {
	WeeklySchedule(ctx context.Context, resourceID string) (*WeeklySchedule, error)
}

type scheduleQueriesImpl struct {
	templates TemplateReadStore
	settings  Settings
}

func NewScheduleQueries(templates TemplateReadStore, settings Settings) ScheduleQueries {
	return &scheduleQueriesImpl{templates: templates, settings: settings.withDefaults()}
}

// WeeklySchedule lists Monday..Sunday; days without a stored template are reported unavailable.
func (q *scheduleQueriesImpl) WeeklySchedule(ctx context.Context, resourceID string) (*WeeklySchedule, error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return nil, errs.Mark(errs.New("empty resource id"), errs.ErrResourceNotFound)
	}

	templates, err := q.templates.FindWeekTemplates(ctx, resourceID)
	if err != nil {
		if errs.Is(err, errs.ErrResourceNotFound) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to load weekly templates"), errs.ErrDependencyFailure)
	}

	byDay := make(map[time.Weekday]*availability.DayTemplate, len(templates))
	for _, t := range templates {
		if t != nil {
			byDay[t.Day] = t
		}
	}

	days := make([]availability.DayTemplate, 0, len(availability.WeekOrder))
	for _, d := range availability.WeekOrder {
		if t, ok := byDay[d]; ok {
			days = append(days, *t)
			continue
		}
		days = append(days, availability.DayTemplate{Day: d, IsAvailable: false, Windows: []availability.WallClockWindow{}})
	}

	return &WeeklySchedule{
		ResourceID: resourceID,
		TimeZone:   q.settings.Location.String(),
		Days:       days,
	}, nil
}
