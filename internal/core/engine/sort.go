package engine

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
)

// Sort returns a copy of rows ordered by spec. The sort is stable: rows
// with equal keys keep their input order in both directions. Campaign
// names are compared with a collator for the given locale.
func Sort(rows []domain.CampaignRow, spec domain.SortSpec, locale language.Tag) []domain.CampaignRow {
	out := slices.Clone(rows)
	if out == nil {
		out = []domain.CampaignRow{}
	}
	compare := comparator(spec.Field, locale)
	sign := 1
	if spec.Direction == domain.SortDesc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b domain.CampaignRow) int {
		return sign * compare(a, b)
	})
	return out
}

func comparator(field domain.SortField, locale language.Tag) func(a, b domain.CampaignRow) int {
	switch field {
	case domain.SortByCampaign:
		// collate.Collator keeps internal buffers; one per Sort call.
		col := collate.New(locale)
		return func(a, b domain.CampaignRow) int { return col.CompareString(a.Campaign, b.Campaign) }
	case domain.SortByImpressions:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.Impressions, b.Impressions) }
	case domain.SortByClicks:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.Clicks, b.Clicks) }
	case domain.SortByConversions:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.Conversions, b.Conversions) }
	case domain.SortByCTR:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.CTR, b.CTR) }
	case domain.SortByCPC:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.CPC, b.CPC) }
	case domain.SortByRevenue:
		return func(a, b domain.CampaignRow) int { return cmp.Compare(a.Revenue, b.Revenue) }
	default:
		return func(domain.CampaignRow, domain.CampaignRow) int { return 0 }
	}
}
