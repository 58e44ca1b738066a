package domain

import (
	"errors"
	"strings"
)

// SortField names a sortable column of the campaign table.
type SortField string

const (
	SortByCampaign    SortField = "campaign"
	SortByImpressions SortField = "impressions"
	SortByClicks      SortField = "clicks"
	SortByConversions SortField = "conversions"
	SortByCTR         SortField = "ctr"
	SortByCPC         SortField = "cpc"
	SortByRevenue     SortField = "revenue"
)

// SortFields is the fixed set of sortable columns.
var SortFields = []SortField{
	SortByCampaign,
	SortByImpressions,
	SortByClicks,
	SortByConversions,
	SortByCTR,
	SortByCPC,
	SortByRevenue,
}

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// SortSpec holds sorting preferences.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort returns the table default: revenue, highest first.
func DefaultSort() SortSpec {
	return SortSpec{Field: SortByRevenue, Direction: SortDesc}
}

// String returns the spec as "field:direction".
func (s SortSpec) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// ParseSortField accepts any of SortFields plus "name" as an alias of
// "campaign".
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if f == "name" {
		return SortByCampaign, nil
	}
	for _, known := range SortFields {
		if f == known {
			return f, nil
		}
	}
	return "", ErrInvalidSortField
}

// ParseSortDirection accepts "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case SortAsc, SortDesc:
		return d, nil
	default:
		return "", ErrInvalidSortDirection
	}
}

// IsString reports whether the field holds text rather than a number.
func (f SortField) IsString() bool {
	return f == SortByCampaign
}
