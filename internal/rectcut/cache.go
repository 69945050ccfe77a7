package rectcut

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is the memoized outcome for one normalized dimension pair.
// Solutions carry the normalized orientation and are never mutated
// after insertion.
type cacheEntry struct {
	count     int
	solutions []Partition
}

// cache memoizes enumeration results per normalized dimension pair.
// The answer for a pair is a mathematical constant, so entries live for
// the process lifetime. Concurrent misses on one key collapse into a
// single enumeration; latecomers wait for the winner's result.
type cache struct {
	enum Enumerator

	mu      sync.RWMutex
	entries map[Dims]*cacheEntry
	group   singleflight.Group
}

func newCache(enum Enumerator) *cache {
	return &cache{
		enum:    enum,
		entries: make(map[Dims]*cacheEntry),
	}
}

// get returns the entry for d, enumerating on first use. d must be
// normalized (Rows <= Cols).
func (c *cache) get(ctx context.Context, d Dims) (*cacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[d]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	key := fmt.Sprintf("%dx%d", d.Rows, d.Cols)
	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[d]
		c.mu.RUnlock()
		if ok {
			return entry, nil
		}

		solutions, err := c.enum.Enumerate(ctx, d)
		if err != nil {
			return nil, err
		}

		entry = &cacheEntry{count: len(solutions), solutions: solutions}
		c.mu.Lock()
		c.entries[d] = entry
		c.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cacheEntry), nil
}
