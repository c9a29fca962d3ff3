package repository

import (
	"sync"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain/bid"
)

// memoryRepo holds the session bid ledger. Nothing is persisted; the
// ledger vanishes with the process, which is the intended lifecycle.
type memoryRepo struct {
	mutex     sync.Mutex
	byListing map[string][]bid.Bid
}

func NewMemory() bid.Repo {
	return &memoryRepo{byListing: map[string][]bid.Bid{}}
}

func (r *memoryRepo) Create(c ctx.Ctx, b bid.Bid) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.byListing[b.ListingId] = append(r.byListing[b.ListingId], b)
	return nil
}

func (r *memoryRepo) FindAll(c ctx.Ctx, listingId string) ([]bid.Bid, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	bids := r.byListing[listingId]
	res := make([]bid.Bid, len(bids))
	copy(res, bids)
	return res, nil
}

func (r *memoryRepo) FindHighest(c ctx.Ctx, listingId string) (*bid.Bid, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var highest *bid.Bid
	for i := range r.byListing[listingId] {
		b := r.byListing[listingId][i]
		if highest == nil || b.Amount > highest.Amount {
			highest = &b
		}
	}
	return highest, nil
}
