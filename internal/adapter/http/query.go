package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/engine"
	"campaign-insights/internal/core/port"
)

const maxPageSize = 100

// parseCampaignQuery reads the table state from query parameters:
//
//	q          case-insensitive campaign name substring
//	status     all | active | paused | completed
//	range      quick range name (today, last7, last30, thisMonth, thisYear, lastYear, all)
//	from, to   YYYY-MM-DD bounds; each overrides the matching side of range
//	order_by   AIP-132 expression, e.g. "revenue desc"
//	sort, dir  alternative to order_by; dir defaults to desc
//	page       1-based, default 1
//	page_size  1..100, default from configuration
func parseCampaignQuery(q url.Values, now time.Time) (port.CampaignQuery, error) {
	var out port.CampaignQuery
	out.Filter.Text = strings.TrimSpace(q.Get("q"))
	out.Filter.Status = strings.ToLower(strings.TrimSpace(q.Get("status")))
	if out.Filter.Status == "" {
		out.Filter.Status = domain.StatusAll
	}

	if name := q.Get("range"); name != "" && name != "custom" {
		rng, err := domain.ResolveQuickRange(name, now)
		if err != nil {
			return out, fmt.Errorf("invalid range %q", name)
		}
		out.Filter.Range = rng
	}
	for _, bound := range []struct {
		key string
		dst **time.Time
	}{
		{"from", &out.Filter.Range.From},
		{"to", &out.Filter.Range.To},
	} {
		v := q.Get(bound.key)
		if v == "" {
			continue
		}
		t, err := time.ParseInLocation(time.DateOnly, v, time.UTC)
		if err != nil {
			return out, fmt.Errorf("invalid '%s' date, want YYYY-MM-DD", bound.key)
		}
		*bound.dst = &t
	}

	sort, err := parseSort(q)
	if err != nil {
		return out, err
	}
	out.Sort = sort

	out.Page.Page = 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return out, fmt.Errorf("invalid page %q", v)
		}
		out.Page.Page = p
	}
	if v := q.Get("page_size"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s < 1 || s > maxPageSize {
			return out, fmt.Errorf("invalid page_size %q, want 1..%d", v, maxPageSize)
		}
		out.Page.Size = s
	}
	return out, nil
}

func parseSort(q url.Values) (domain.SortSpec, error) {
	if expr := q.Get("order_by"); expr != "" {
		return engine.ParseOrderBy(expr)
	}
	spec := domain.DefaultSort()
	if v := q.Get("sort"); v != "" {
		f, err := domain.ParseSortField(v)
		if err != nil {
			return spec, fmt.Errorf("invalid sort %q", v)
		}
		spec.Field = f
	}
	if v := q.Get("dir"); v != "" {
		d, err := domain.ParseSortDirection(v)
		if err != nil {
			return spec, fmt.Errorf("invalid dir %q", v)
		}
		spec.Direction = d
	}
	return spec, nil
}
