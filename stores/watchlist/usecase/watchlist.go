package usecase

import (
	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/base/log"
	"github.com/sitebid/goapi/domain/listing"
	"github.com/sitebid/goapi/domain/watchlist"
)

type watchlistImpl struct {
	watchlist watchlist.Repo
	listing   listing.Repo
}

func New(watchlistRepo watchlist.Repo, listingRepo listing.Repo) watchlist.Usecase {
	return &watchlistImpl{watchlistRepo, listingRepo}
}

func (im *watchlistImpl) Toggle(c ctx.Ctx, sessionId, listingId string) (bool, error) {
	if _, err := im.listing.FindOne(c, listingId); err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Warn("listing.FindOne failed")
		return false, err
	}

	watched, err := im.watchlist.Toggle(c, sessionId, listingId)
	if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("watchlist.Toggle failed")
		return false, err
	}
	return watched, nil
}

func (im *watchlistImpl) IsWatched(c ctx.Ctx, sessionId, listingId string) (bool, error) {
	return im.watchlist.IsWatched(c, sessionId, listingId)
}

func (im *watchlistImpl) GetWatched(c ctx.Ctx, sessionId string) ([]*listing.Listing, error) {
	ids, err := im.watchlist.FindAll(c, sessionId)
	if err != nil {
		c.WithField("err", err).Error("watchlist.FindAll failed")
		return nil, err
	}

	res := []*listing.Listing{}
	for _, id := range ids {
		l, err := im.listing.FindOne(c, id)
		if err != nil {
			// the feed is fixed, a dangling id means a bug upstream
			c.WithFields(log.Fields{"listingId": id, "err": err}).Warn("watched listing missing from feed")
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

func (im *watchlistImpl) GetWatcherCount(c ctx.Ctx, listingId string) (int, error) {
	l, err := im.listing.FindOne(c, listingId)
	if err != nil {
		return 0, err
	}

	live, err := im.watchlist.Count(c, listingId)
	if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("watchlist.Count failed")
		return 0, err
	}
	return int(l.Watchers) + live, nil
}
