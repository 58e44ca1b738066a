package engine

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"

	"campaign-insights/internal/core/domain"
)

// ParseOrderBy reads an AIP-132 order_by expression such as "revenue desc"
// into a SortSpec. Only a single field is supported. An empty expression
// returns domain.DefaultSort.
func ParseOrderBy(expr string) (domain.SortSpec, error) {
	if strings.TrimSpace(expr) == "" {
		return domain.DefaultSort(), nil
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(expr); err != nil {
		return domain.SortSpec{}, fmt.Errorf("parse order_by: %w", err)
	}
	if len(orderBy.Fields) != 1 {
		return domain.SortSpec{}, fmt.Errorf("order_by must name exactly one field: %w", domain.ErrInvalidSortField)
	}
	field, err := domain.ParseSortField(orderBy.Fields[0].Path)
	if err != nil {
		return domain.SortSpec{}, fmt.Errorf("order_by %q: %w", orderBy.Fields[0].Path, err)
	}
	dir := domain.SortAsc
	if orderBy.Fields[0].Desc {
		dir = domain.SortDesc
	}
	return domain.SortSpec{Field: field, Direction: dir}, nil
}
