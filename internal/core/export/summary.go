package export

import "campaign-insights/internal/core/domain"

// Summary aggregates an exported row set. Means are only meaningful when
// HasMeans is true; an empty set has zero sums and no means.
type Summary struct {
	Count       int
	Impressions int64
	Clicks      int64
	Revenue     float64
	AvgCTR      float64
	AvgCPC      float64
	HasMeans    bool
}

// Summarize computes totals and plain means of CTR and CPC over rows.
func Summarize(rows []domain.CampaignRow) Summary {
	s := Summary{Count: len(rows)}
	var ctr, cpc float64
	for _, r := range rows {
		s.Impressions += r.Impressions
		s.Clicks += r.Clicks
		s.Revenue += r.Revenue
		ctr += r.CTR
		cpc += r.CPC
	}
	if s.Count > 0 {
		n := float64(s.Count)
		s.AvgCTR = ctr / n
		s.AvgCPC = cpc / n
		s.HasMeans = true
	}
	return s
}

const notAvailable = "N/A"

// lines renders the summary block, one "Label: value" per line.
func (s Summary) lines(f formatter) []string {
	avgCTR, avgCPC := notAvailable, notAvailable
	if s.HasMeans {
		avgCTR = f.percent(s.AvgCTR)
		avgCPC = f.price(s.AvgCPC)
	}
	return []string{
		"Total Campaigns: " + f.count(int64(s.Count)),
		"Total Impressions: " + f.count(s.Impressions),
		"Total Clicks: " + f.count(s.Clicks),
		"Total Revenue: " + f.money(s.Revenue),
		"Average CTR: " + avgCTR,
		"Average CPC: " + avgCPC,
	}
}
