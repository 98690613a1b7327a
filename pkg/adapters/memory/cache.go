package memory

import (
	"context"
	"sync"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]*domain.Result
	mu   sync.RWMutex
}

// NewCache creates a new in-memory result cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*domain.Result),
	}
}

// Set stores the result in memory.
func (c *Cache) Set(ctx context.Context, key string, res *domain.Result) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := domain.Result{
		Words: append([]string(nil), res.Words...),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = &copied
	return nil
}

// Get retrieves a previously stored result.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.data[key]
	if !ok {
		return nil, domain.ErrResultNotFound
	}

	// Copy on read so the caller can't mutate cached state by pointer
	ret := domain.Result{
		Words: append([]string(nil), res.Words...),
	}
	return &ret, nil
}

// Delete removes a cached result.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len reports how many results are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
