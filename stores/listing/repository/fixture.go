package repository

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/log"
	"github.com/sitebid/goapi/domain"
	"github.com/sitebid/goapi/domain/listing"
)

//go:embed fixtures/listings.json
var embeddedListings []byte

// fixtureRepo serves the listing feed loaded once at startup. The
// records are never mutated afterwards, so reads need no locking.
type fixtureRepo struct {
	listings []*listing.Listing
	byId     map[string]*listing.Listing
}

// NewFixture builds the repo from the embedded feed
func NewFixture() (listing.Repo, error) {
	return newFromBytes(embeddedListings)
}

// NewFromFile builds the repo from an external feed file, for deploys
// that swap the catalog without rebuilding
func NewFromFile(path string) (listing.Repo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Log().WithFields(log.Fields{"path": path, "err": err}).Error("read listing feed failed")
		return nil, err
	}
	return newFromBytes(raw)
}

func newFromBytes(raw []byte) (listing.Repo, error) {
	var listings []*listing.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		log.Log().WithField("err", err).Error("parse listing feed failed")
		return nil, err
	}

	byId := make(map[string]*listing.Listing, len(listings))
	for _, l := range listings {
		if _, ok := byId[l.Id]; ok {
			log.Log().WithField("id", l.Id).Error("listing feed has duplicate id")
			return nil, domain.ErrDuplicateListing
		}
		byId[l.Id] = l
	}

	return &fixtureRepo{listings: listings, byId: byId}, nil
}

func (r *fixtureRepo) FindAll(c ctx.Ctx) ([]*listing.Listing, error) {
	// hand out a fresh slice so callers can reorder freely
	res := make([]*listing.Listing, len(r.listings))
	copy(res, r.listings)
	return res, nil
}

func (r *fixtureRepo) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	l, ok := r.byId[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (r *fixtureRepo) Count(c ctx.Ctx) (int, error) {
	return len(r.listings), nil
}
