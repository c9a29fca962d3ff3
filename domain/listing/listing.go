package listing

import (
	"time"

	"github.com/sitebid/goapi/base/ctx"
)

// Listing is a digital business offered for sale or auction. Records come
// from the fixture feed and are treated as immutable for the lifetime of
// the process.
type Listing struct {
	Id               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Url              string       `json:"url"`
	Price            float64      `json:"price"`
	CurrentBid       *float64     `json:"currentBid,omitempty"`
	BuyNowPrice      *float64     `json:"buyNowPrice,omitempty"`
	MonthlyRevenue   float64      `json:"monthlyRevenue"`
	MonthlyProfit    float64      `json:"monthlyProfit"`
	MonthlyPageviews int64        `json:"monthlyPageviews"`
	Age              int32        `json:"age"` // months
	Category         Category     `json:"category"`
	Technologies     []string     `json:"technologies"`
	AuctionEndDate   *time.Time   `json:"auctionEndDate,omitempty"`
	IsVerified       bool         `json:"isVerified"`
	SellerRating     float64      `json:"sellerRating"`
	Images           []string     `json:"images"`
	Metrics          Metrics      `json:"metrics"`
	Financials       Financials   `json:"financials"`
	BidHistory       []BidRecord  `json:"bidHistory,omitempty"`
	Watchers         int32        `json:"watchers"`
}

// Metrics are the trailing 12 month aggregates of a listing
type Metrics struct {
	Revenue12Month   float64 `json:"revenue12Month"`
	Profit12Month    float64 `json:"profit12Month"`
	Pageviews12Month int64   `json:"pageviews12Month"`
	SocialFollowers  *int64  `json:"socialFollowers,omitempty"`
	EmailSubscribers *int64  `json:"emailSubscribers,omitempty"`
}

type Financials struct {
	Expenses       Expenses `json:"expenses"`
	RevenueStreams []string `json:"revenueStreams"`
}

type Expenses struct {
	Hosting   float64 `json:"hosting"`
	Marketing float64 `json:"marketing"`
	Other     float64 `json:"other"`
}

// BidRecord is one entry of a listing's bid history, newest first by
// convention
type BidRecord struct {
	Amount    float64   `json:"amount"`
	Bidder    string    `json:"bidder"`
	Timestamp time.Time `json:"timestamp"`
}

type PricingKind string

const (
	PricingFixed   PricingKind = "fixed"
	PricingAuction PricingKind = "auction"
)

// Pricing is the resolved pricing mode of a listing. A listing with an
// auction end date is an auction, everything else is fixed price.
type Pricing struct {
	Kind        PricingKind `json:"kind"`
	Price       float64     `json:"price"`
	CurrentBid  *float64    `json:"currentBid,omitempty"`
	BuyNowPrice *float64    `json:"buyNowPrice,omitempty"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
}

func (l *Listing) IsAuction() bool {
	return l.AuctionEndDate != nil
}

func (l *Listing) Pricing() Pricing {
	if l.IsAuction() {
		return Pricing{
			Kind:        PricingAuction,
			Price:       l.Price,
			CurrentBid:  l.CurrentBid,
			BuyNowPrice: l.BuyNowPrice,
			EndDate:     l.AuctionEndDate,
		}
	}
	return Pricing{
		Kind:        PricingFixed,
		Price:       l.Price,
		BuyNowPrice: l.BuyNowPrice,
	}
}

// EffectivePrice is the baseline a new bid must exceed: the current bid
// when present, the asking price otherwise
func (l *Listing) EffectivePrice() float64 {
	if l.CurrentBid != nil {
		return *l.CurrentBid
	}
	return l.Price
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Listing, error)
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	Count(c ctx.Ctx) (int, error)
}

type Usecase interface {
	Query(c ctx.Ctx, criteria *Criteria) ([]*Listing, error)
	ResultTitle(criteria *Criteria) string
	GetById(c ctx.Ctx, id string) (*Listing, error)
	Suggest(c ctx.Ctx, term string, limit int) ([]*Listing, error)
}
