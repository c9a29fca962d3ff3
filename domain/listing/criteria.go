package listing

import (
	"fmt"
	"strings"
)

type SortBy string

const (
	SortByPrice    SortBy = "price"
	SortByRevenue  SortBy = "revenue"
	SortByWatchers SortBy = "watchers"
	SortByEnding   SortBy = "ending"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder treats anything other than desc as ascending
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortOrderDesc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Criteria is the structured set of filter and sort parameters applied
// to the listing collection. Nil optional fields impose no constraint.
type Criteria struct {
	Category   *Category
	Search     *string
	MinPrice   *float64
	MaxPrice   *float64
	MinRevenue *float64
	MaxRevenue *float64
	Verified   *bool
	SortBy     SortBy
	SortOrder  SortOrder
}

func DefaultCriteria() *Criteria {
	return &Criteria{
		SortBy:    SortByPrice,
		SortOrder: SortOrderAsc,
	}
}

// Key renders a stable cache key covering every field that affects the
// query result
func (cr *Criteria) Key() string {
	var b strings.Builder
	writePart := func(name string, v interface{}) {
		fmt.Fprintf(&b, "%s=%v;", name, v)
	}
	if cr.Category != nil {
		writePart("category", *cr.Category)
	}
	if cr.Search != nil {
		writePart("search", strings.ToLower(strings.TrimSpace(*cr.Search)))
	}
	if cr.MinPrice != nil {
		writePart("minPrice", *cr.MinPrice)
	}
	if cr.MaxPrice != nil {
		writePart("maxPrice", *cr.MaxPrice)
	}
	if cr.MinRevenue != nil {
		writePart("minRevenue", *cr.MinRevenue)
	}
	if cr.MaxRevenue != nil {
		writePart("maxRevenue", *cr.MaxRevenue)
	}
	if cr.Verified != nil {
		writePart("verified", *cr.Verified)
	}
	writePart("sortBy", cr.SortBy)
	writePart("sortOrder", cr.SortOrder)
	return b.String()
}
