package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sitebid/goapi/base/ptr"
)

type urlquerySuite struct {
	suite.Suite
}

func TestUrlquerySuite(t *testing.T) {
	suite.Run(t, new(urlquerySuite))
}

func (s *urlquerySuite) TestToQuery() {
	saas := CategorySaas
	tests := []struct {
		desc string
		cr   *Criteria
		exp  url.Values
	}{
		{desc: "empty", cr: DefaultCriteria(), exp: url.Values{}},
		{desc: "category only", cr: &Criteria{Category: &saas}, exp: url.Values{"category": {"saas"}}},
		{desc: "search trimmed", cr: &Criteria{Search: ptr.String("  food blog ")}, exp: url.Values{"search": {"food blog"}}},
		{desc: "blank search omitted", cr: &Criteria{Search: ptr.String("   ")}, exp: url.Values{}},
		{
			desc: "sort and bounds stay view-local",
			cr: &Criteria{
				Category:  &saas,
				MinPrice:  ptr.Float64(1000),
				Verified:  ptr.Bool(true),
				SortBy:    SortByRevenue,
				SortOrder: SortOrderDesc,
			},
			exp: url.Values{"category": {"saas"}},
		},
	}
	for _, t := range tests {
		s.Equal(t.exp, t.cr.ToQuery(), t.desc)
	}
}

func (s *urlquerySuite) TestFromQuery() {
	cr := CriteriaFromQuery(url.Values{"category": {"content"}, "search": {" wordpress "}})
	s.Require().NotNil(cr.Category)
	s.Equal(CategoryContent, *cr.Category)
	s.Require().NotNil(cr.Search)
	s.Equal("wordpress", *cr.Search)
	// non-reflected fields come back as defaults
	s.Equal(SortByPrice, cr.SortBy)
	s.Equal(SortOrderAsc, cr.SortOrder)

	empty := CriteriaFromQuery(url.Values{})
	s.Nil(empty.Category)
	s.Nil(empty.Search)
}

func (s *urlquerySuite) TestRoundTrip() {
	saas := CategorySaas
	cases := []*Criteria{
		DefaultCriteria(),
		{Category: &saas},
		{Search: ptr.String("tech reviews")},
		{Category: &saas, Search: ptr.String("dashboard")},
	}
	for _, cr := range cases {
		back := CriteriaFromQuery(cr.ToQuery())
		s.Equal(cr.Category, back.Category)
		if cr.Search == nil {
			s.Nil(back.Search)
		} else {
			s.Equal(*cr.Search, *back.Search)
		}
		// a second pass through the mapping is a fixpoint
		s.Equal(back.ToQuery(), CriteriaFromQuery(back.ToQuery()).ToQuery())
	}
}
