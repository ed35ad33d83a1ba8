package availability

import (
	"slices"
	"time"
)

// Interval is a half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	if !i.IsValid() {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Overlaps uses the open test: touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Subtract returns the portions of free not covered by any busy interval.
func Subtract(free Interval, busy []Interval) []Interval {
	if !free.IsValid() {
		return []Interval{}
	}

	sorted := sortedValid(busy)
	pieces := []Interval{free}

	for _, b := range sorted {
		next := make([]Interval, 0, len(pieces)+1)
		for _, p := range pieces {
			if !p.Overlaps(b) {
				next = append(next, p)
				continue
			}
			if p.Start.Before(b.Start) {
				next = append(next, Interval{Start: p.Start, End: b.Start})
			}
			if b.End.Before(p.End) {
				next = append(next, Interval{Start: b.End, End: p.End})
			}
		}
		pieces = filterValid(next)
	}

	return pieces
}

// Merge folds overlapping or touching intervals into a minimal ascending sequence.
func Merge(intervals []Interval) []Interval {
	sorted := sortedValid(intervals)
	merged := make([]Interval, 0, len(sorted))

	for _, iv := range sorted {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

func sortedValid(intervals []Interval) []Interval {
	out := filterValid(intervals)
	slices.SortStableFunc(out, func(a, b Interval) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})
	return out
}

func filterValid(intervals []Interval) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.IsValid() {
			out = append(out, iv)
		}
	}
	return out
}
