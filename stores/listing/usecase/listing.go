package usecase

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/log"
	"github.com/sitebid/goapi/domain/listing"
)

const defaultMemoSize = 128

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
	// MemoSize bounds the query memo; zero picks the default
	MemoSize int
}

type impl struct {
	listing listing.Repo
	memo    *lru.Cache
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	size := cfg.MemoSize
	if size <= 0 {
		size = defaultMemoSize
	}
	// lru.New only fails on a non-positive size
	memo, _ := lru.New(size)
	return &impl{
		listing: cfg.ListingRepo,
		memo:    memo,
	}
}

// Query filters the feed against the criteria and stable-sorts the
// result. The feed is fixed for the process lifetime, so results are
// memoized per criteria.
func (im *impl) Query(c ctx.Ctx, criteria *listing.Criteria) ([]*listing.Listing, error) {
	if criteria == nil {
		criteria = listing.DefaultCriteria()
	}

	key := criteria.Key()
	if cached, ok := im.memo.Get(key); ok {
		return copyListings(cached.([]*listing.Listing)), nil
	}

	all, err := im.listing.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("listing.FindAll failed")
		return nil, err
	}

	filtered := make([]*listing.Listing, 0, len(all))
	for _, l := range all {
		if criteria.Match(l) {
			filtered = append(filtered, l)
		}
	}

	listing.SortListings(filtered, criteria.SortBy, criteria.SortOrder)

	im.memo.Add(key, filtered)
	return copyListings(filtered), nil
}

// ResultTitle derives the heading of a result set from the criteria
func (im *impl) ResultTitle(criteria *listing.Criteria) string {
	if criteria == nil {
		return "All Listings"
	}
	if criteria.Search != nil {
		if term := strings.TrimSpace(*criteria.Search); term != "" {
			return fmt.Sprintf("Search results for %q", term)
		}
	}
	if criteria.Category != nil && criteria.Category.IsValid() {
		return criteria.Category.Info().Label
	}
	return "All Listings"
}

func (im *impl) GetById(c ctx.Ctx, id string) (*listing.Listing, error) {
	l, err := im.listing.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Warn("listing.FindOne failed")
		return nil, err
	}
	return l, nil
}

// Suggest fuzzy-matches the term against listing titles and urls for
// search typeahead
func (im *impl) Suggest(c ctx.Ctx, term string, limit int) ([]*listing.Listing, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*listing.Listing{}, nil
	}

	all, err := im.listing.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("listing.FindAll failed")
		return nil, err
	}

	matches := fuzzy.FindFrom(term, suggestSource(all))

	res := []*listing.Listing{}
	for _, m := range matches {
		res = append(res, all[m.Index])
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res, nil
}

type suggestSource []*listing.Listing

func (s suggestSource) String(i int) string {
	return s[i].Title + " " + s[i].Url
}

func (s suggestSource) Len() int {
	return len(s)
}

func copyListings(ls []*listing.Listing) []*listing.Listing {
	res := make([]*listing.Listing, len(ls))
	copy(res, ls)
	return res
}
