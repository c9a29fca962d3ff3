package listing

import (
	"net/url"
	"strings"
)

// Only category and search are mirrored into the URL; sort, price,
// revenue and verified stay view-local. This matches the observed
// behavior of the browse view and keeps shared links minimal.

// ToQuery renders the URL-reflected subset of the criteria
func (cr *Criteria) ToQuery() url.Values {
	q := url.Values{}
	if cr.Category != nil {
		q.Set("category", string(*cr.Category))
	}
	if cr.Search != nil {
		if s := strings.TrimSpace(*cr.Search); s != "" {
			q.Set("search", s)
		}
	}
	return q
}

// CriteriaFromQuery reconstructs criteria from a URL query. Fields the
// URL does not reflect come back with their defaults.
func CriteriaFromQuery(q url.Values) *Criteria {
	cr := DefaultCriteria()
	if v := q.Get("category"); v != "" {
		c := Category(v)
		cr.Category = &c
	}
	if v := strings.TrimSpace(q.Get("search")); v != "" {
		cr.Search = &v
	}
	return cr
}
