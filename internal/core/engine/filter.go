package engine

import (
	"strings"
	"time"

	"campaign-insights/internal/core/domain"
)

// Predicate reports whether a row passes one filter condition.
type Predicate func(domain.CampaignRow) bool

// MatchText matches rows whose campaign name contains text, ignoring case.
// An empty text matches every row.
func MatchText(text string) Predicate {
	if text == "" {
		return func(domain.CampaignRow) bool { return true }
	}
	needle := strings.ToLower(text)
	return func(r domain.CampaignRow) bool {
		return strings.Contains(strings.ToLower(r.Campaign), needle)
	}
}

// MatchStatus matches rows with the given status. StatusAll and the empty
// string match every row.
func MatchStatus(status string) Predicate {
	if status == "" || status == domain.StatusAll {
		return func(domain.CampaignRow) bool { return true }
	}
	return func(r domain.CampaignRow) bool {
		return string(r.Status) == status
	}
}

// MatchDate matches rows whose date falls inside rng, bounds inclusive.
// A row whose date cannot be parsed fails as soon as either bound is set.
func MatchDate(rng domain.DateRange) Predicate {
	if rng.IsZero() {
		return func(domain.CampaignRow) bool { return true }
	}
	var from, to *time.Time
	if rng.From != nil {
		f := domain.Day(*rng.From)
		from = &f
	}
	if rng.To != nil {
		t := domain.Day(*rng.To)
		to = &t
	}
	return func(r domain.CampaignRow) bool {
		d, err := r.ParsedDate()
		if err != nil {
			return false
		}
		if from != nil && d.Before(*from) {
			return false
		}
		if to != nil && d.After(*to) {
			return false
		}
		return true
	}
}

// Predicates returns the text, status and date predicates for c.
func Predicates(c domain.FilterCriteria) []Predicate {
	return []Predicate{MatchText(c.Text), MatchStatus(c.Status), MatchDate(c.Range)}
}

// Filter returns the rows that satisfy every predicate of c, in input
// order. The input slice is not modified.
func Filter(rows []domain.CampaignRow, c domain.FilterCriteria) []domain.CampaignRow {
	return FilterWith(rows, Predicates(c)...)
}

// FilterWith keeps the rows accepted by all preds.
func FilterWith(rows []domain.CampaignRow, preds ...Predicate) []domain.CampaignRow {
	out := make([]domain.CampaignRow, 0, len(rows))
next:
	for _, r := range rows {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
