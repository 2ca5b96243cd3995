// Package repository implements content cache adapters
package repository

import (
	"context"
	"sync"
	"time"

	"learning-web/internal/core/ports"
)

// Ensure MemoryContentCache implements SweepableCache
var _ ports.SweepableCache = (*MemoryContentCache)(nil)

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryContentCache is an in-process ContentCache guarded by a RWMutex
type MemoryContentCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryContentCache creates an empty cache
func NewMemoryContentCache() *MemoryContentCache {
	return &MemoryContentCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns a live entry; expired entries count as misses
func (c *MemoryContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.expired(entry) {
		return nil, false, nil
	}
	return entry.body, true, nil
}

// Set stores body under key. A non-positive ttl keeps the entry until purged.
func (c *MemoryContentCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	entry := memoryEntry{body: body}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// EvictExpired removes entries past their TTL
func (c *MemoryContentCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Purge removes every entry
func (c *MemoryContentCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.entries)
	c.entries = make(map[string]memoryEntry)
	return removed
}

// Len returns the number of stored entries, expired or not
func (c *MemoryContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryContentCache) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt)
}
