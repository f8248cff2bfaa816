package cache

import (
	"sync"
	"time"
)

// ListCache is a time-boxed in-memory cache for directory listings.
// Entries expire after the TTL; Invalidate drops everything after a write.
type ListCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
	swept   time.Time
}

type entry struct {
	value    any
	storedAt time.Time
}

// NewListCache creates a cache; ttl <= 0 disables caching
func NewListCache(ttl time.Duration) *ListCache {
	return &ListCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
		swept:   time.Now(),
	}
}

// Get returns the value stored under key if it has not expired
func (c *ListCache) Get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *ListCache) Set(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	now := c.now()
	c.mu.Lock()
	if now.Sub(c.swept) >= c.ttl {
		c.pruneLocked(now)
	}
	c.entries[key] = entry{value: value, storedAt: now}
	c.mu.Unlock()
}

// pruneLocked drops expired entries, at most once per TTL
func (c *ListCache) pruneLocked(now time.Time) {
	for k, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.swept = now
}

// Invalidate clears all entries
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included
func (c *ListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
