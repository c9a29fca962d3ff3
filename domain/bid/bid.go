package bid

import (
	"time"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain/listing"
)

// Bid is a simulated bid placed by a session during its lifetime. There
// is no persistence and no cross-session collision handling.
type Bid struct {
	ListingId string    `json:"listingId"`
	SessionId string    `json:"sessionId"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placedAt"`
}

// Confirmation is returned to the caller after a successful placement
type Confirmation struct {
	Id        string    `json:"id"`
	ListingId string    `json:"listingId"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placedAt"`
}

type Repo interface {
	Create(c ctx.Ctx, b Bid) error
	FindAll(c ctx.Ctx, listingId string) ([]Bid, error)
	FindHighest(c ctx.Ctx, listingId string) (*Bid, error)
}

type Usecase interface {
	// Place validates the amount against the listing's effective price
	// plus any higher session bid, rejecting with domain.ErrInvalidBid
	Place(c ctx.Ctx, sessionId, listingId, amount string) (*Confirmation, error)
	// History merges the fixture bid history with session bids, newest
	// first
	History(c ctx.Ctx, listingId string) ([]listing.BidRecord, error)
}
