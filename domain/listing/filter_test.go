package listing

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sitebid/goapi/base/ptr"
)

func sampleListing() *Listing {
	return &Listing{
		Id:             "s1",
		Title:          "Profitable E-commerce Store",
		Description:    "Established online store with consistent growth.",
		Url:            "homegardenstore.com",
		Price:          75000,
		MonthlyRevenue: 12500,
		Category:       CategoryEcommerce,
		Technologies:   []string{"Shopify", "Google Analytics"},
		IsVerified:     true,
		Financials: Financials{
			RevenueStreams: []string{"Product Sales", "Affiliate Commissions"},
		},
	}
}

type filterSuite struct {
	suite.Suite
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(filterSuite))
}

func (s *filterSuite) TestEmptyCriteriaMatchesEverything() {
	cr := DefaultCriteria()
	s.True(cr.Match(sampleListing()))
}

func (s *filterSuite) TestCategory() {
	l := sampleListing()
	ecommerce := CategoryEcommerce
	saas := CategorySaas

	s.True((&Criteria{Category: &ecommerce}).Match(l))
	s.False((&Criteria{Category: &saas}).Match(l))
}

func (s *filterSuite) TestSearchAcrossFields() {
	l := sampleListing()
	tests := []struct {
		desc string
		term string
		exp  bool
	}{
		{desc: "title substring", term: "e-commerce", exp: true},
		{desc: "case-insensitive", term: "SHOPIFY", exp: true},
		{desc: "url", term: "homegarden", exp: true},
		{desc: "category name", term: "ecommerce", exp: true},
		{desc: "revenue stream", term: "affiliate comm", exp: true},
		{desc: "description", term: "consistent growth", exp: true},
		{desc: "no field matches", term: "crypto", exp: false},
		{desc: "blank term is no constraint", term: "   ", exp: true},
	}
	for _, t := range tests {
		cr := Criteria{Search: ptr.String(t.term)}
		s.Equal(t.exp, cr.Match(l), t.desc)
	}
}

func (s *filterSuite) TestPriceBoundsInclusive() {
	l := sampleListing()
	tests := []struct {
		desc     string
		min, max *float64
		exp      bool
	}{
		{desc: "inside", min: ptr.Float64(50000), max: ptr.Float64(100000), exp: true},
		{desc: "min equals price", min: ptr.Float64(75000), exp: true},
		{desc: "max equals price", max: ptr.Float64(75000), exp: true},
		{desc: "below min", min: ptr.Float64(75001), exp: false},
		{desc: "above max", max: ptr.Float64(74999), exp: false},
	}
	for _, t := range tests {
		cr := Criteria{MinPrice: t.min, MaxPrice: t.max}
		s.Equal(t.exp, cr.Match(l), t.desc)
	}
}

func (s *filterSuite) TestRevenueBounds() {
	l := sampleListing()
	s.True((&Criteria{MinRevenue: ptr.Float64(12500), MaxRevenue: ptr.Float64(12500)}).Match(l))
	s.False((&Criteria{MinRevenue: ptr.Float64(20000)}).Match(l))
	s.False((&Criteria{MaxRevenue: ptr.Float64(10000)}).Match(l))
}

func (s *filterSuite) TestVerified() {
	l := sampleListing()
	s.True((&Criteria{Verified: ptr.Bool(true)}).Match(l))

	l.IsVerified = false
	s.False((&Criteria{Verified: ptr.Bool(true)}).Match(l))
	// false imposes no constraint
	s.True((&Criteria{Verified: ptr.Bool(false)}).Match(l))
}

func (s *filterSuite) TestAllConstraintsAnded() {
	l := sampleListing()
	ecommerce := CategoryEcommerce
	cr := Criteria{
		Category: &ecommerce,
		Search:   ptr.String("shopify"),
		MinPrice: ptr.Float64(50000),
		Verified: ptr.Bool(true),
	}
	s.True(cr.Match(l))

	cr.MinPrice = ptr.Float64(100000)
	s.False(cr.Match(l), "one failing predicate rejects the listing")
}
