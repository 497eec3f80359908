package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMemoryEntries = 512
	maxMemoryTTL         = 24 * time.Hour
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process LRU. The LRU evicts on a global TTL; each
// entry additionally carries its own expiry.
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = defaultMemoryEntries
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, maxMemoryTTL),
		now: time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len reports the number of live and not yet swept entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}
