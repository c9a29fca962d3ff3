package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain/listing"
)

type handlerSuite struct {
	suite.Suite

	handler *handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.handler = &handler{now: time.Now}
}

func (s *handlerSuite) newEchoCtx(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func (s *handlerSuite) TestBuildCriteria() {
	c := s.newEchoCtx("/listings?category=saas&search=analytics&minPrice=50000&maxPrice=250000&verified=true&sortBy=revenue&sortOrder=desc")

	criteria := s.handler.buildCriteria(bCtx.Background(), c)

	s.Require().NotNil(criteria.Category)
	s.Equal(listing.CategorySaas, *criteria.Category)
	s.Require().NotNil(criteria.Search)
	s.Equal("analytics", *criteria.Search)
	s.Require().NotNil(criteria.MinPrice)
	s.Equal(float64(50000), *criteria.MinPrice)
	s.Require().NotNil(criteria.MaxPrice)
	s.Equal(float64(250000), *criteria.MaxPrice)
	s.Require().NotNil(criteria.Verified)
	s.True(*criteria.Verified)
	s.Equal(listing.SortByRevenue, criteria.SortBy)
	s.Equal(listing.SortOrderDesc, criteria.SortOrder)
}

func (s *handlerSuite) TestBuildCriteriaLenientBounds() {
	cases := []struct {
		desc   string
		target string
	}{
		{desc: "non numeric bound", target: "/listings?minPrice=cheap"},
		{desc: "empty bound", target: "/listings?minPrice="},
		{desc: "grouped digits", target: "/listings?minPrice=50,000"},
	}
	for _, c := range cases {
		criteria := s.handler.buildCriteria(bCtx.Background(), s.newEchoCtx(c.target))
		s.Nil(criteria.MinPrice, c.desc)
	}
}

func (s *handlerSuite) TestBuildCriteriaDefaults() {
	criteria := s.handler.buildCriteria(bCtx.Background(), s.newEchoCtx("/listings"))

	s.Nil(criteria.Category)
	s.Nil(criteria.Search)
	s.Nil(criteria.MinPrice)
	s.Nil(criteria.MaxPrice)
	s.Nil(criteria.MinRevenue)
	s.Nil(criteria.MaxRevenue)
	s.Nil(criteria.Verified)
	s.Equal(listing.SortByPrice, criteria.SortBy)
	s.Equal(listing.SortOrderAsc, criteria.SortOrder)
}

func (s *handlerSuite) TestBuildCriteriaUnparseableVerifiedIgnored() {
	criteria := s.handler.buildCriteria(bCtx.Background(), s.newEchoCtx("/listings?verified=banana"))
	s.Nil(criteria.Verified)
}

func (s *handlerSuite) TestMakeListPayload() {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(49 * time.Hour)
	currentBid := 72000.0

	l := &listing.Listing{
		Id:               "1",
		Price:            65000,
		CurrentBid:       &currentBid,
		MonthlyPageviews: 1300000,
		Category:         listing.CategorySaas,
		AuctionEndDate:   &end,
	}

	p := makeListPayload(l, now)

	s.Equal("$72,000", p.PriceDisplay)
	s.Equal("1.3M", p.PageviewsDisplay)
	s.Equal("2d 1h", p.TimeRemaining)
	s.Equal("SaaS Businesses", p.CategoryInfo.Label)
}

func (s *handlerSuite) TestMakeListPayloadFixedPrice() {
	l := &listing.Listing{
		Id:               "2",
		Price:            85000,
		MonthlyPageviews: 850,
		Category:         listing.CategoryEcommerce,
	}

	p := makeListPayload(l, time.Now())

	s.Equal("$85,000", p.PriceDisplay)
	s.Equal("850", p.PageviewsDisplay)
	s.Empty(p.TimeRemaining)
}
