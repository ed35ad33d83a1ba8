package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMalformedDate = errors.New("malformed date")

const DefaultTimeZone = "Asia/Makassar"

// CivilDate is a calendar date with no zone attached.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns the given wall-clock time on this date in loc.
func (d CivilDate) In(loc *time.Location, tod TimeOfDay) time.Time {
	return time.Date(d.Year, d.Month, d.Day, tod.Hour, tod.Minute, tod.Second, 0, loc)
}

// DayBounds describes the civil day an instant falls on.
type DayBounds struct {
	Day      time.Weekday
	Date     CivilDate
	StartUTC time.Time
	EndUTC   time.Time
}

// LocalMidnight is the start of the civil day expressed in loc.
func (b DayBounds) LocalMidnight(loc *time.Location) time.Time {
	return b.StartUTC.In(loc)
}

// ResolveDay projects instant into loc and returns the surrounding civil day.
func ResolveDay(instant time.Time, loc *time.Location) DayBounds {
	local := instant.In(loc)
	date := CivilDateOf(local)

	start := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, loc)
	end := time.Date(date.Year, date.Month, date.Day, 23, 59, 59, int(999*time.Millisecond), loc)

	return DayBounds{
		Day:      local.Weekday(),
		Date:     date,
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
	}
}

// ProjectWindow converts a template window to absolute instants for one date.
// The offset is looked up for that date, so the same stored window follows DST changes.
func ProjectWindow(w WallClockWindow, date CivilDate, loc *time.Location) Interval {
	return Interval{
		Start: date.In(loc, w.Start).UTC(),
		End:   date.In(loc, w.End).UTC(),
	}
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseSelectedDate reads an ISO-8601 instant; zone-less inputs are read in loc.
func ParseSelectedDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrMalformedDate)
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
}
