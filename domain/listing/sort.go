package listing

import "sort"

// Compare orders two listings by the given key and direction, returning
// -1, 0 or 1. Unknown sort keys fall back to price. For the ending key,
// auction listings always sort before fixed-price listings regardless of
// direction; the direction only applies between two auctions.
func Compare(a, b *Listing, by SortBy, order SortOrder) int {
	var res int
	switch by {
	case SortByRevenue:
		res = compareFloat(a.MonthlyRevenue, b.MonthlyRevenue)
	case SortByWatchers:
		res = compareFloat(float64(a.Watchers), float64(b.Watchers))
	case SortByEnding:
		switch {
		case a.AuctionEndDate == nil && b.AuctionEndDate == nil:
			return 0
		case a.AuctionEndDate == nil:
			return 1
		case b.AuctionEndDate == nil:
			return -1
		}
		res = compareFloat(float64(a.AuctionEndDate.UnixMilli()), float64(b.AuctionEndDate.UnixMilli()))
	default:
		res = compareFloat(a.Price, b.Price)
	}
	if order == SortOrderDesc {
		res = -res
	}
	return res
}

// SortListings sorts in place with a stable algorithm so equal-key
// listings keep their original relative order
func SortListings(ls []*Listing, by SortBy, order SortOrder) {
	sort.SliceStable(ls, func(i, j int) bool {
		return Compare(ls[i], ls[j], by, order) < 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
