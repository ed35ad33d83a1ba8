package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Read models (DTO for read side)
type AvailabilityResult struct {
	ResourceID    string
	Date          time.Time
	LocalDate     time.Time
	Day           time.Weekday
	FreeIntervals []availability.Interval
	Meta          AvailabilityMeta
}

type AvailabilityMeta struct {
	TimeZone    string
	SlotMinutes int
}

// Settings carries what used to be process-wide constants.
type Settings struct {
	Location     *time.Location
	SlotDuration time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.SlotDuration <= 0 {
		s.SlotDuration = availability.DefaultSlotDuration
	}
	return s
}

// TemplateReadStore resolves weekly templates. A nil template with a nil error
// means the resource exists but has nothing stored for that day.
type TemplateReadStore interface {
	FindDayTemplate(ctx context.Context, resourceID string, day time.Weekday) (*availability.DayTemplate, error)
	FindWeekTemplates(ctx context.Context, resourceID string) ([]*availability.DayTemplate, error)
}

type BookingReadStore interface {
	FindBookingsInRange(ctx context.Context, resourceID string, start, end time.Time) ([]availability.Booking, error)
}

type AvailabilityQueries interface {
	ComputeAvailability(ctx context.Context, resourceID, selectedDate string) (*AvailabilityResult, error)
}

type availabilityQueriesImpl struct {
	templates TemplateReadStore
	bookings  BookingReadStore
	settings  Settings
	logger    *slog.Logger
}

func NewAvailabilityQueries(templates TemplateReadStore, bookings BookingReadStore, settings Settings, logger *slog.Logger) AvailabilityQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &availabilityQueriesImpl{
		templates: templates,
		bookings:  bookings,
		settings:  settings.withDefaults(),
		logger:    logger,
	}
}

// ComputeAvailability returns the free windows of resourceID on the civil day containing selectedDate.
// The result is a snapshot; accepting a booking must re-check conflicts in the write transaction.
func (q *availabilityQueriesImpl) ComputeAvailability(ctx context.Context, resourceID, selectedDate string) (*AvailabilityResult, error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return nil, errs.Mark(errs.New("empty resource id"), errs.ErrResourceNotFound)
	}

	loc := q.settings.Location
	instant, err := availability.ParseSelectedDate(selectedDate, loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	bounds := availability.ResolveDay(instant, loc)

	var (
		template *availability.DayTemplate
		bookings []availability.Booking
		tmplErr  error
		bookErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		template, tmplErr = q.templates.FindDayTemplate(gctx, resourceID, bounds.Day)
		return tmplErr
	})
	g.Go(func() error {
		bookings, bookErr = q.bookings.FindBookingsInRange(gctx, resourceID, bounds.StartUTC, bounds.EndUTC)
		return bookErr
	})
	if err := g.Wait(); err != nil {
		// A read cut short by the other one failing reports the other's cause.
		if bookErr != nil && (tmplErr == nil || (ctx.Err() == nil && errs.Is(tmplErr, context.Canceled))) {
			return nil, q.dependencyErr(bookErr, "failed to fetch bookings", resourceID)
		}
		return nil, q.dependencyErr(tmplErr, "failed to resolve day template", resourceID)
	}

	result := &AvailabilityResult{
		ResourceID:    resourceID,
		Date:          instant,
		LocalDate:     bounds.LocalMidnight(loc),
		Day:           bounds.Day,
		FreeIntervals: []availability.Interval{},
		Meta: AvailabilityMeta{
			TimeZone:    loc.String(),
			SlotMinutes: int(q.settings.SlotDuration / time.Minute),
		},
	}

	if !template.HasAvailability() {
		q.logger.DebugContext(ctx, "no availability for day",
			slog.String("resource_id", resourceID),
			slog.String("day", bounds.Day.String()))
		return result, nil
	}

	busy := availability.BusyIntervals(bookings, q.settings.SlotDuration)

	pieces := make([]availability.Interval, 0, len(template.Windows))
	for _, w := range template.Windows {
		window := availability.ProjectWindow(w, bounds.Date, loc)
		pieces = append(pieces, availability.Subtract(window, busy)...)
	}
	result.FreeIntervals = availability.Merge(pieces)

	q.logger.DebugContext(ctx, "availability computed",
		slog.String("resource_id", resourceID),
		slog.String("date", bounds.Date.String()),
		slog.Int("windows", len(template.Windows)),
		slog.Int("bookings", len(bookings)),
		slog.Int("free_intervals", len(result.FreeIntervals)))

	return result, nil
}

func (q *availabilityQueriesImpl) dependencyErr(err error, msg, resourceID string) error {
	if errs.Is(err, errs.ErrResourceNotFound) {
		return errs.Wrap(err, msg)
	}
	q.logger.Warn(msg, slog.String("resource_id", resourceID), slog.String("error", err.Error()))
	return errs.Mark(errs.Wrap(err, msg), errs.ErrDependencyFailure)
}
