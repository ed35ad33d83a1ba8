//go:build unit || e2e

package builder

import (
	"time"

	"interview-availability/internal/domain/availability"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	ResourceID  string
	Day         time.Weekday
	IsAvailable bool
	Windows     [][2]string
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ResourceID:  uuid.NewString(),
		Day:         time.Tuesday,
		IsAvailable: true,
		Windows:     [][2]string{{"09:00", "12:00"}},
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) WithDay(day time.Weekday) *TemplateBuilder {
	b.Day = day
	return b
}

func (b *TemplateBuilder) WithWindows(windows ...[2]string) *TemplateBuilder {
	b.Windows = windows
	return b
}

func (b *TemplateBuilder) Unavailable() *TemplateBuilder {
	b.IsAvailable = false
	return b
}

// BuildDomain panics on malformed windows; builders only run with literals.
func (b *TemplateBuilder) BuildDomain() *availability.DayTemplate {
	windows := make([]availability.WallClockWindow, 0, len(b.Windows))
	for _, w := range b.Windows {
		start, err := availability.ParseTimeOfDay(w[0])
		if err != nil {
			panic(err)
		}
		end, err := availability.ParseTimeOfDay(w[1])
		if err != nil {
			panic(err)
		}
		windows = append(windows, availability.WallClockWindow{Start: start, End: end})
	}
	return &availability.DayTemplate{
		Day:         b.Day,
		IsAvailable: b.IsAvailable,
		Windows:     windows,
	}
}
