package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a bounded in-process Cache. The least recently used entry is
// evicted once size is reached.
type MemoryCache struct {
	entries *lru.Cache
	now     func() time.Time
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memory cache")
	}
	return &MemoryCache{entries: entries, now: time.Now}, nil
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	raw, ok := c.entries.Get(key)
	if !ok {
		return "", nil
	}
	entry := raw.(memoryEntry)
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return "", nil
	}
	return entry.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	entry := memoryEntry{value: stringify(value)}
	if expiration > 0 {
		entry.expiresAt = c.now().Add(expiration)
	}
	c.entries.Add(key, entry)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}

func (c *MemoryCache) Len() int {
	return c.entries.Len()
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
