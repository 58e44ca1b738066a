package domain

import "time"

// DateRange bounds a filter on the campaign date. Either side may be nil,
// meaning unbounded. Both bounds are inclusive and compared by calendar day.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// FilterCriteria selects rows for the campaign table. The zero value
// matches everything.
type FilterCriteria struct {
	// Text is a case-insensitive substring matched against the campaign name.
	Text string
	// Status is StatusAll, an empty string or a Status value.
	Status string
	Range  DateRange
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
