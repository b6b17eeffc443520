package data

import (
	"sync"
	"time"

	"virtual-energy-trader/internal/model"
)

type cacheEntry struct {
	series    model.PriceSeries
	expiresAt time.Time
}

// SeriesCache is an in-memory TTL cache for external feed responses, keyed
// by trading date. All methods are safe on a nil receiver, which is how a
// disabled cache is represented.
type SeriesCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
}

// NewSeriesCache returns a cache with the given TTL, or nil when ttl <= 0.
func NewSeriesCache(ttl time.Duration) *SeriesCache {
	if ttl <= 0 {
		return nil
	}
	return &SeriesCache{
		store: make(map[string]cacheEntry),
		ttl:   ttl,
	}
}

func (c *SeriesCache) Get(date string) (model.PriceSeries, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	entry, exists := c.store[date]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.store, date)
		c.mu.Unlock()
		return nil, false
	}
	return entry.series, true
}

func (c *SeriesCache) Set(date string, series model.PriceSeries) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[date] = cacheEntry{
		series:    series,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *SeriesCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
}
