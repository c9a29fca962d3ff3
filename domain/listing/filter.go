package listing

import "strings"

// Match reports whether the listing satisfies every constraint the
// criteria specifies. Absent fields impose no constraint.
func (cr *Criteria) Match(l *Listing) bool {
	if cr.Category != nil && l.Category != *cr.Category {
		return false
	}
	if cr.Search != nil && !matchSearch(l, *cr.Search) {
		return false
	}
	if cr.MinPrice != nil && l.Price < *cr.MinPrice {
		return false
	}
	if cr.MaxPrice != nil && l.Price > *cr.MaxPrice {
		return false
	}
	if cr.MinRevenue != nil && l.MonthlyRevenue < *cr.MinRevenue {
		return false
	}
	if cr.MaxRevenue != nil && l.MonthlyRevenue > *cr.MaxRevenue {
		return false
	}
	if cr.Verified != nil && *cr.Verified && !l.IsVerified {
		return false
	}
	return true
}

// matchSearch does a case-insensitive substring match against each
// searchable field independently. One matching field is enough.
func matchSearch(l *Listing, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range searchableFields(l) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func searchableFields(l *Listing) []string {
	fields := []string{l.Title, l.Description, l.Url, string(l.Category)}
	fields = append(fields, l.Technologies...)
	fields = append(fields, l.Financials.RevenueStreams...)
	return fields
}
