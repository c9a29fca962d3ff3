package watchlist

import (
	"time"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain/listing"
)

// Watch marks a listing as tracked by one session. Watches live in
// memory only and are discarded with the session.
type Watch struct {
	SessionId string    `json:"sessionId"`
	ListingId string    `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repo interface {
	// Toggle adds the listing to the session's watchlist if absent and
	// removes it if present, returning the new membership state
	Toggle(c ctx.Ctx, sessionId, listingId string) (bool, error)
	IsWatched(c ctx.Ctx, sessionId, listingId string) (bool, error)
	// FindAll returns the watched listing ids of a session in the order
	// they were added
	FindAll(c ctx.Ctx, sessionId string) ([]string, error)
	// Count returns how many sessions currently watch the listing
	Count(c ctx.Ctx, listingId string) (int, error)
}

type Usecase interface {
	Toggle(c ctx.Ctx, sessionId, listingId string) (bool, error)
	IsWatched(c ctx.Ctx, sessionId, listingId string) (bool, error)
	GetWatched(c ctx.Ctx, sessionId string) ([]*listing.Listing, error)
	// GetWatcherCount combines the fixture watcher count with live
	// session watches
	GetWatcherCount(c ctx.Ctx, listingId string) (int, error)
}
