package models

import "fmt"

// TimeRange is an enumerated lookback window used to bound aggregation.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
	RangeAll   TimeRange = "all"
)

// WindowDays returns the lookback window in days and whether the range is
// bounded at all. RangeAll is unbounded.
//
// The day window is a rolling 24 hours from now, not a calendar-day filter.
func (r TimeRange) WindowDays() (int, bool) {
	switch r {
	case RangeDay:
		return 1, true
	case RangeWeek:
		return 7, true
	case RangeMonth:
		return 30, true
	case RangeYear:
		return 365, true
	default:
		return 0, false
	}
}

// ParseTimeRange validates a user-supplied range name.
func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case RangeDay, RangeWeek, RangeMonth, RangeYear, RangeAll:
		return r, nil
	default:
		return "", fmt.Errorf("unknown time range %q", s)
	}
}

// AggregatedDay is one calendar day's arithmetic mean of each rating across
// all of that day's entries, plus the day's morning log. Derived, never
// persisted.
type AggregatedDay struct {
	Date          string
	Anxiety       float64
	Irritability  float64
	DepressedMood float64
	ElevatedMood  float64
	Energy        float64
	Sleep         *float64
	Weight        *float64
}
