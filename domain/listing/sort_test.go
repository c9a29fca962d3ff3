package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sitebid/goapi/base/ptr"
)

type sortSuite struct {
	suite.Suite
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(sortSuite))
}

func (s *sortSuite) TestCompareNumericKeys() {
	a := &Listing{Price: 100, MonthlyRevenue: 5, Watchers: 9}
	b := &Listing{Price: 200, MonthlyRevenue: 3, Watchers: 9}

	s.Equal(-1, Compare(a, b, SortByPrice, SortOrderAsc))
	s.Equal(1, Compare(a, b, SortByPrice, SortOrderDesc))
	s.Equal(1, Compare(a, b, SortByRevenue, SortOrderAsc))
	s.Equal(0, Compare(a, b, SortByWatchers, SortOrderAsc))
}

func (s *sortSuite) TestUnknownKeyFallsBackToPrice() {
	a := &Listing{Price: 100}
	b := &Listing{Price: 200}
	s.Equal(-1, Compare(a, b, SortBy("bogus"), SortOrderAsc))
}

func (s *sortSuite) TestCompareEnding() {
	early := time.Date(2024, 8, 3, 12, 0, 0, 0, time.UTC)
	late := time.Date(2024, 8, 8, 12, 0, 0, 0, time.UTC)
	auctionEarly := &Listing{AuctionEndDate: ptr.Time(early)}
	auctionLate := &Listing{AuctionEndDate: ptr.Time(late)}
	fixed := &Listing{}
	fixed2 := &Listing{}

	s.Equal(-1, Compare(auctionEarly, auctionLate, SortByEnding, SortOrderAsc))
	s.Equal(1, Compare(auctionEarly, auctionLate, SortByEnding, SortOrderDesc))

	// auctions come before fixed-price listings in either direction
	s.Equal(-1, Compare(auctionLate, fixed, SortByEnding, SortOrderAsc))
	s.Equal(-1, Compare(auctionLate, fixed, SortByEnding, SortOrderDesc))
	s.Equal(1, Compare(fixed, auctionEarly, SortByEnding, SortOrderAsc))
	s.Equal(1, Compare(fixed, auctionEarly, SortByEnding, SortOrderDesc))

	s.Equal(0, Compare(fixed, fixed2, SortByEnding, SortOrderAsc))
}

func (s *sortSuite) TestSortStability() {
	a := &Listing{Id: "a", Price: 100}
	b := &Listing{Id: "b", Price: 100}
	c := &Listing{Id: "c", Price: 50}

	asc := []*Listing{a, b, c}
	SortListings(asc, SortByPrice, SortOrderAsc)
	s.Equal([]string{"c", "a", "b"}, sortedIds(asc))

	desc := []*Listing{a, b, c}
	SortListings(desc, SortByPrice, SortOrderDesc)
	s.Equal([]string{"a", "b", "c"}, sortedIds(desc), "equal keys keep input order under desc too")
}

func sortedIds(ls []*Listing) []string {
	res := make([]string, len(ls))
	for i, l := range ls {
		res[i] = l.Id
	}
	return res
}
