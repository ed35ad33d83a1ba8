//go:build unit || e2e

package builder

import (
	"time"

	"interview-availability/internal/domain/availability"
)

type BookingBuilder struct {
	ResourceID string
	Location   *time.Location
	Date       availability.CivilDate
	starts     []availability.TimeOfDay
}

func NewBookingBuilder(resourceID string, date availability.CivilDate, loc *time.Location) *BookingBuilder {
	return &BookingBuilder{ResourceID: resourceID, Location: loc, Date: date}
}

// At adds a booking starting at the given local wall-clock time ("HH:MM").
func (b *BookingBuilder) At(local string) *BookingBuilder {
	tod, err := availability.ParseTimeOfDay(local)
	if err != nil {
		panic(err)
	}
	b.starts = append(b.starts, tod)
	return b
}

func (b *BookingBuilder) Build() []availability.Booking {
	out := make([]availability.Booking, 0, len(b.starts))
	for _, s := range b.starts {
		out = append(out, availability.Booking{
			ResourceID: b.ResourceID,
			Start:      b.Date.In(b.Location, s).UTC(),
		})
	}
	return out
}
