package recents

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/namma-loo/api-go/logger"
	"github.com/namma-loo/api-go/models"
)

const (
	cacheKey   = "recent_toilet_cache"
	maxRecents = 20
	maxViewed  = 10
)

// Entry is a denormalized snapshot of one viewed toilet. Exactly one
// entry exists per toilet id; repeat views merge into it.
type Entry struct {
	ToiletID  uint    `json:"toiletId"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating"`
	ImageURL  string  `json:"imageUrl"`
	ViewedAt  int64   `json:"viewedAt"`
	ViewCount int     `json:"viewCount"`
}

// Stats summarizes the cache contents.
type Stats struct {
	TotalEntries int        `json:"totalEntries"`
	TotalViews   int        `json:"totalViews"`
	OldestEntry  *time.Time `json:"oldestEntry"`
	NewestEntry  *time.Time `json:"newestEntry"`
}

// Cache tracks the most recently viewed toilets, capped at 20 entries
// with LRU-by-last-view eviction. State is persisted through the Store
// under a single key as one JSON map; mutations are read-modify-write
// guarded by an in-process mutex, so concurrent writers in other
// processes are last-writer-wins. Storage failures are logged and the
// in-memory result is still served.
type Cache struct {
	mu      sync.Mutex
	store   Store
	log     *zap.SugaredLogger
	now     func() time.Time
	subs    map[int]func([]Entry)
	nextSub int
}

func NewCache(store Store) *Cache {
	return &Cache{
		store: store,
		log:   logger.GetLogger("recents"),
		now:   time.Now,
		subs:  make(map[int]func([]Entry)),
	}
}

// RecordView upserts a view event for the toilet. A toilet without an
// identifier is logged and skipped, never an error. On repeat views the
// count increments and the timestamp and snapshot are replaced.
func (c *Cache) RecordView(ctx context.Context, t models.Toilet) {
	if t.ID == 0 {
		c.log.Warnw("cannot record view: missing toilet id", "name", t.Name)
		return
	}

	c.mu.Lock()
	cache := c.load(ctx)

	entry := Entry{
		ToiletID:  t.ID,
		Name:      t.Name,
		Address:   t.Address,
		Rating:    t.Rating,
		ImageURL:  t.ImageURL,
		ViewedAt:  c.now().UnixMilli(),
		ViewCount: 1,
	}
	if entry.Name == "" {
		entry.Name = "Public Toilet"
	}
	if entry.Address == "" {
		entry.Address = "Address not available"
	}
	if existing, ok := cache[t.ID]; ok {
		entry.ViewCount = existing.ViewCount + 1
	}
	cache[t.ID] = entry

	cache = trim(cache)
	c.persist(ctx, cache)
	c.mu.Unlock()

	c.notify(recentFirst(cache))
}

// Recent returns all entries, most recently viewed first.
func (c *Cache) Recent(ctx context.Context) []Entry {
	c.mu.Lock()
	cache := c.load(ctx)
	c.mu.Unlock()
	return recentFirst(cache)
}

// MostViewed returns the top 10 entries by view count.
func (c *Cache) MostViewed(ctx context.Context) []Entry {
	c.mu.Lock()
	cache := c.load(ctx)
	c.mu.Unlock()

	entries := collect(cache)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ViewCount > entries[j].ViewCount
	})
	if len(entries) > maxViewed {
		entries = entries[:maxViewed]
	}
	return entries
}

// Contains reports whether the toilet is in the cache.
func (c *Cache) Contains(ctx context.Context, toiletID uint) bool {
	c.mu.Lock()
	cache := c.load(ctx)
	c.mu.Unlock()
	_, ok := cache[toiletID]
	return ok
}

// Remove deletes one entry and notifies subscribers.
func (c *Cache) Remove(ctx context.Context, toiletID uint) {
	c.mu.Lock()
	cache := c.load(ctx)
	if _, ok := cache[toiletID]; !ok {
		c.mu.Unlock()
		return
	}
	delete(cache, toiletID)
	c.persist(ctx, cache)
	c.mu.Unlock()

	c.notify(recentFirst(cache))
}

// Clear empties the cache and notifies subscribers.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	if err := c.store.Del(ctx, cacheKey); err != nil {
		c.log.Errorw("failed to clear recent toilets", "error", err)
	}
	c.mu.Unlock()

	c.notify(nil)
}

// GetStats returns aggregate numbers over the current entries.
func (c *Cache) GetStats(ctx context.Context) Stats {
	entries := c.Recent(ctx)

	stats := Stats{TotalEntries: len(entries)}
	for _, e := range entries {
		stats.TotalViews += e.ViewCount
	}
	if len(entries) > 0 {
		newest := time.UnixMilli(entries[0].ViewedAt)
		oldest := time.UnixMilli(entries[len(entries)-1].ViewedAt)
		stats.NewestEntry = &newest
		stats.OldestEntry = &oldest
	}
	return stats
}

// Subscribe registers a callback and immediately invokes it with the
// current state so new observers need not poll. The returned function
// deregisters it.
func (c *Cache) Subscribe(ctx context.Context, callback func([]Entry)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = callback
	c.mu.Unlock()

	c.invoke(callback, c.Recent(ctx))

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// notify delivers the fresh state to every subscriber. A panicking
// callback must not break delivery to the others.
func (c *Cache) notify(entries []Entry) {
	c.mu.Lock()
	callbacks := make([]func([]Entry), 0, len(c.subs))
	for _, cb := range c.subs {
		callbacks = append(callbacks, cb)
	}
	c.mu.Unlock()

	for _, cb := range callbacks {
		c.invoke(cb, entries)
	}
}

func (c *Cache) invoke(cb func([]Entry), entries []Entry) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("recents subscriber panicked", "panic", r)
		}
	}()
	cb(entries)
}

// load reads the persisted map; any failure degrades to an empty map so
// the cache favors availability over durability.
func (c *Cache) load(ctx context.Context) map[uint]Entry {
	cache := make(map[uint]Entry)
	data, err := c.store.Get(ctx, cacheKey)
	if err != nil {
		c.log.Errorw("failed to load recent toilets", "error", err)
		return cache
	}
	if data == nil {
		return cache
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		c.log.Errorw("corrupt recent toilet cache, resetting", "error", err)
		return make(map[uint]Entry)
	}
	return cache
}

func (c *Cache) persist(ctx context.Context, cache map[uint]Entry) {
	data, err := json.Marshal(cache)
	if err != nil {
		c.log.Errorw("failed to encode recent toilets", "error", err)
		return
	}
	if err := c.store.Set(ctx, cacheKey, data); err != nil {
		c.log.Errorw("failed to persist recent toilets", "error", err)
	}
}

// trim evicts the oldest-by-last-view entries beyond capacity. Eviction
// is recency based, not frequency based.
func trim(cache map[uint]Entry) map[uint]Entry {
	if len(cache) <= maxRecents {
		return cache
	}

	entries := collect(cache)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ViewedAt > entries[j].ViewedAt
	})

	trimmed := make(map[uint]Entry, maxRecents)
	for _, e := range entries[:maxRecents] {
		trimmed[e.ToiletID] = e
	}
	return trimmed
}

func collect(cache map[uint]Entry) []Entry {
	entries := make([]Entry, 0, len(cache))
	for _, e := range cache {
		entries = append(entries, e)
	}
	return entries
}

func recentFirst(cache map[uint]Entry) []Entry {
	entries := collect(cache)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ViewedAt > entries[j].ViewedAt
	})
	return entries
}
