package domain

import (
	"errors"
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// StatusAll is the filter selector that matches every status. It is never a
// valid row status.
const StatusAll = "all"

// Statuses lists every valid row status in display order.
var Statuses = []Status{StatusActive, StatusPaused, StatusCompleted}

var ErrInvalidStatus = errors.New("invalid campaign status")

// ParseStatus converts a textual status into a Status. Matching is case
// insensitive and ignores surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	default:
		return false
	}
}

// Title returns the status with its first letter capitalized, e.g. "Active".
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// CampaignRow is a single line of the campaign performance table.
//
// CTR and CPC are stored as reported by the data source and are never
// recomputed from the counters. Clicks may exceed Impressions.
type CampaignRow struct {
	ID          string  `json:"id"`
	Campaign    string  `json:"campaign"`
	Status      Status  `json:"status"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"` // percent
	CPC         float64 `json:"cpc"` // currency units per click
	Revenue     float64 `json:"revenue"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

// ParsedDate parses the stored calendar date as midnight UTC.
func (r CampaignRow) ParsedDate() (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, r.Date, time.UTC)
}
