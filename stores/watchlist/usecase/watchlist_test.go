package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain"
	"github.com/sitebid/goapi/domain/watchlist"
	listingRepo "github.com/sitebid/goapi/stores/listing/repository"
	watchlistRepo "github.com/sitebid/goapi/stores/watchlist/repository"
)

type watchlistSuite struct {
	suite.Suite
	uc watchlist.Usecase
}

func TestWatchlistSuite(t *testing.T) {
	suite.Run(t, new(watchlistSuite))
}

func (s *watchlistSuite) SetupTest() {
	listings, err := listingRepo.NewFixture()
	s.Require().NoError(err)
	s.uc = New(watchlistRepo.NewMemory(), listings)
}

func (s *watchlistSuite) TestToggle() {
	c := ctx.Background()

	watched, err := s.uc.Toggle(c, "session-a", "1")
	s.NoError(err)
	s.True(watched)

	watched, err = s.uc.Toggle(c, "session-a", "1")
	s.NoError(err)
	s.False(watched, "second toggle removes the watch")

	watched, err = s.uc.Toggle(c, "session-a", "1")
	s.NoError(err)
	s.True(watched)
}

func (s *watchlistSuite) TestToggleUnknownListing() {
	c := ctx.Background()
	_, err := s.uc.Toggle(c, "session-a", "no-such-id")
	s.Equal(domain.ErrNotFound, err)
}

func (s *watchlistSuite) TestSessionsAreIndependent() {
	c := ctx.Background()
	_, err := s.uc.Toggle(c, "session-a", "2")
	s.NoError(err)

	watched, err := s.uc.IsWatched(c, "session-b", "2")
	s.NoError(err)
	s.False(watched)

	watched, err = s.uc.IsWatched(c, "session-a", "2")
	s.NoError(err)
	s.True(watched)
}

func (s *watchlistSuite) TestGetWatched() {
	c := ctx.Background()
	for _, id := range []string{"3", "1", "5"} {
		_, err := s.uc.Toggle(c, "session-a", id)
		s.NoError(err)
	}

	ls, err := s.uc.GetWatched(c, "session-a")
	s.NoError(err)
	s.Len(ls, 3)

	ls, err = s.uc.GetWatched(c, "session-b")
	s.NoError(err)
	s.Empty(ls)
}

func (s *watchlistSuite) TestGetWatcherCount() {
	c := ctx.Background()

	// the fixture listing starts with 23 watchers
	n, err := s.uc.GetWatcherCount(c, "1")
	s.NoError(err)
	s.Equal(23, n)

	_, err = s.uc.Toggle(c, "session-a", "1")
	s.NoError(err)
	_, err = s.uc.Toggle(c, "session-b", "1")
	s.NoError(err)

	n, err = s.uc.GetWatcherCount(c, "1")
	s.NoError(err)
	s.Equal(25, n)

	_, err = s.uc.Toggle(c, "session-b", "1")
	s.NoError(err)
	n, err = s.uc.GetWatcherCount(c, "1")
	s.NoError(err)
	s.Equal(24, n)
}
