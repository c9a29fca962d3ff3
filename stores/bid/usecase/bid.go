package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/display"
	"github.com/sitebid/goapi/base/log"
	"github.com/sitebid/goapi/domain"
	"github.com/sitebid/goapi/domain/bid"
	"github.com/sitebid/goapi/domain/listing"
)

type BidUseCaseCfg struct {
	BidRepo     bid.Repo
	ListingRepo listing.Repo
	// Now is the clock used for bid timestamps; defaults to time.Now
	Now func() time.Time
}

type impl struct {
	bid     bid.Repo
	listing listing.Repo
	now     func() time.Time
}

func New(cfg *BidUseCaseCfg) bid.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		bid:     cfg.BidRepo,
		listing: cfg.ListingRepo,
		now:     now,
	}
}

func (im *impl) Place(c ctx.Ctx, sessionId, listingId, amount string) (*bid.Confirmation, error) {
	l, err := im.listing.FindOne(c, listingId)
	if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Warn("listing.FindOne failed")
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "amount": amount}).Warn("bid amount is not a number")
		return nil, fmt.Errorf("%w: amount %q is not a number", domain.ErrInvalidBid, amount)
	}
	val, _ := d.Float64()

	floor, err := im.effectivePrice(c, l)
	if err != nil {
		return nil, err
	}
	if val <= floor {
		return nil, fmt.Errorf("%w: bid must be greater than %s", domain.ErrInvalidBid, display.Currency(floor))
	}

	placedAt := im.now()
	if err := im.bid.Create(c, bid.Bid{
		ListingId: listingId,
		SessionId: sessionId,
		Amount:    val,
		PlacedAt:  placedAt,
	}); err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("bid.Create failed")
		return nil, err
	}

	return &bid.Confirmation{
		Id:        uuid.NewString(),
		ListingId: listingId,
		Amount:    val,
		PlacedAt:  placedAt,
	}, nil
}

// effectivePrice is the listing's current bid or asking price, raised by
// any higher bid the session ledger already holds
func (im *impl) effectivePrice(c ctx.Ctx, l *listing.Listing) (float64, error) {
	floor := l.EffectivePrice()
	highest, err := im.bid.FindHighest(c, l.Id)
	if err != nil {
		c.WithFields(log.Fields{"listingId": l.Id, "err": err}).Error("bid.FindHighest failed")
		return 0, err
	}
	if highest != nil && highest.Amount > floor {
		floor = highest.Amount
	}
	return floor, nil
}

func (im *impl) History(c ctx.Ctx, listingId string) ([]listing.BidRecord, error) {
	l, err := im.listing.FindOne(c, listingId)
	if err != nil {
		return nil, err
	}

	placed, err := im.bid.FindAll(c, listingId)
	if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("bid.FindAll failed")
		return nil, err
	}

	res := make([]listing.BidRecord, 0, len(l.BidHistory)+len(placed))
	res = append(res, l.BidHistory...)
	for _, b := range placed {
		res = append(res, listing.BidRecord{
			Amount:    b.Amount,
			Bidder:    b.SessionId,
			Timestamp: b.PlacedAt,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Timestamp.After(res[j].Timestamp)
	})
	return res, nil
}
