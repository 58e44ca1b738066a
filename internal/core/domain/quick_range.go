package domain

import (
	"errors"
	"time"
)

// Quick range names accepted by ResolveQuickRange.
const (
	RangeToday     = "today"
	RangeLast7     = "last7"
	RangeLast30    = "last30"
	RangeThisMonth = "thisMonth"
	RangeThisYear  = "thisYear"
	RangeLastYear  = "lastYear"
	RangeAll       = "all"
)

var ErrUnknownQuickRange = errors.New("unknown quick range")

// ResolveQuickRange turns a named shorthand into a concrete DateRange
// relative to today. "last7" covers today and the six days before it.
func ResolveQuickRange(name string, today time.Time) (DateRange, error) {
	t := Day(today)
	y, m, _ := t.Date()
	switch name {
	case RangeToday:
		return bounded(t, t), nil
	case RangeLast7:
		return bounded(t.AddDate(0, 0, -6), t), nil
	case RangeLast30:
		return bounded(t.AddDate(0, 0, -29), t), nil
	case RangeThisMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return bounded(first, first.AddDate(0, 1, -1)), nil
	case RangeThisYear:
		return bounded(time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(y, 12, 31, 0, 0, 0, 0, time.UTC)), nil
	case RangeLastYear:
		return bounded(time.Date(y-1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(y-1, 12, 31, 0, 0, 0, 0, time.UTC)), nil
	case RangeAll:
		return DateRange{}, nil
	default:
		return DateRange{}, ErrUnknownQuickRange
	}
}

func bounded(from, to time.Time) DateRange {
	return DateRange{From: &from, To: &to}
}
