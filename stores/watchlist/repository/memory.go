package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/sitebid/goapi/base/ctx"
	"github.com/sitebid/goapi/domain/watchlist"
)

// memoryRepo keeps the session watch sets in process memory. Sessions
// are the only writers of their own entries, but echo serves requests
// concurrently, so the maps stay behind a mutex.
type memoryRepo struct {
	mutex sync.Mutex
	// sessionId -> listingId -> added at
	bySession map[string]map[string]time.Time
	// listingId -> live watcher count
	counts map[string]int
	now    func() time.Time
}

func NewMemory() watchlist.Repo {
	return &memoryRepo{
		bySession: map[string]map[string]time.Time{},
		counts:    map[string]int{},
		now:       time.Now,
	}
}

func (r *memoryRepo) Toggle(c ctx.Ctx, sessionId, listingId string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	set, ok := r.bySession[sessionId]
	if !ok {
		set = map[string]time.Time{}
		r.bySession[sessionId] = set
	}

	if _, watched := set[listingId]; watched {
		delete(set, listingId)
		r.counts[listingId]--
		return false, nil
	}

	set[listingId] = r.now()
	r.counts[listingId]++
	return true, nil
}

func (r *memoryRepo) IsWatched(c ctx.Ctx, sessionId, listingId string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, watched := r.bySession[sessionId][listingId]
	return watched, nil
}

func (r *memoryRepo) FindAll(c ctx.Ctx, sessionId string) ([]string, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	set := r.bySession[sessionId]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if set[ids[i]].Equal(set[ids[j]]) {
			return ids[i] < ids[j]
		}
		return set[ids[i]].Before(set[ids[j]])
	})
	return ids, nil
}

func (r *memoryRepo) Count(c ctx.Ctx, listingId string) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.counts[listingId], nil
}
