package readstore

import (
	"context"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/infra"
	"interview-availability/internal/infra/db"
	"interview-availability/internal/pkg/pgconv"
)

type BookingReadQueries interface {
	ListBookingsInRange(ctx context.Context, db db.DBTX, arg ListBookingsInRangeParams) ([]BookingRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindBookingsInRange returns live bookings whose start lies in [start, end].
func (r *BookingReadStore) FindBookingsInRange(ctx context.Context, resourceID string, start, end time.Time) ([]availability.Booking, error) {
	rows, err := r.queries.ListBookingsInRange(ctx, r.db, ListBookingsInRangeParams{
		ResourceID: resourceID,
		RangeStart: pgconv.TimeToPgtype(start),
		RangeEnd:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in range", err)
	}

	result := make([]availability.Booking, 0, len(rows))
	for _, row := range rows {
		result = append(result, availability.Booking{
			ResourceID: row.ResourceID,
			Start:      pgconv.TimeFromPgtype(row.StartTime).UTC(),
		})
	}

	return result, nil
}
