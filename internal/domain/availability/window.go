package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWeekday   = errors.New("invalid weekday name")
	ErrInvalidWindow    = errors.New("window end must be after start")
)

// TimeOfDay is a wall-clock time without a calendar date.
// 24:00 is allowed and denotes the end of the day.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// EndOfDay is midnight at the end of the day, as SQL time columns store '24:00:00'.
var EndOfDay = TimeOfDay{Hour: 24}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute, Second: second}
	if t == EndOfDay {
		return t, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTimeOfDay, hour, minute, second)
	}
	return t, nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS", and "24:00" for the end of the day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" || s == "24:00:00" {
		return EndOfDay, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// TimeOfDayFromDuration converts an offset since midnight, as stored by a SQL time column.
func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d > 24*time.Hour {
		return TimeOfDay{}, fmt.Errorf("%w: %s", ErrInvalidTimeOfDay, d)
	}
	total := int(d / time.Second)
	return TimeOfDay{Hour: total / 3600, Minute: total % 3600 / 60, Second: total % 60}, nil
}

func (t TimeOfDay) String() string {
	if t.Second == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) SinceMidnight() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute + time.Duration(t.Second)*time.Second
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.SinceMidnight() < other.SinceMidnight()
}

// WallClockWindow is one recurring slot in a weekly template, read in the reference time zone.
type WallClockWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewWallClockWindow(start, end TimeOfDay) (WallClockWindow, error) {
	if !start.Before(end) {
		return WallClockWindow{}, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, start, end)
	}
	return WallClockWindow{Start: start, End: end}, nil
}

func (w WallClockWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// DayTemplate is the recurring availability of one resource for one weekday.
type DayTemplate struct {
	Day         time.Weekday
	IsAvailable bool
	Windows     []WallClockWindow
}

func (t *DayTemplate) HasAvailability() bool {
	return t != nil && t.IsAvailable && len(t.Windows) > 0
}

// ParseWeekday maps "Monday".."Sunday" (any case) to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// WeekOrder lists weekdays Monday first.
var WeekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
