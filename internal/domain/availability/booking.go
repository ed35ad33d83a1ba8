package availability

import "time"

const DefaultSlotDuration = 30 * time.Minute

// Booking has no stored end; its length is the configured slot duration.
type Booking struct {
	ResourceID string
	Start      time.Time
}

func (b Booking) Interval(slot time.Duration) Interval {
	return Interval{Start: b.Start, End: b.Start.Add(slot)}
}

func BusyIntervals(bookings []Booking, slot time.Duration) []Interval {
	busy := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, b.Interval(slot))
	}
	return busy
}
