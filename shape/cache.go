package shape

import "sync"

// Cache memoizes column-first Strides by shape. Entries are never evicted.
// A Cache is safe for concurrent use.
type Cache struct {
	mu sync.Mutex
	m  map[string]*Strides
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]*Strides)}
}

// DefaultCache is the process-wide cache behind StridesOf.
var DefaultCache = NewCache()

// Strides returns the column-first Strides of s, computing them on first use.
func (c *Cache) Strides(s Shape) *Strides {
	key := s.Key()
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.m[key]; ok {
		return st
	}
	// A column-first order is always a valid permutation.
	st, _ := NewStrides(s, nil)
	c.m[key] = st
	return st
}

// Len returns the number of cached shapes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// StridesOf returns the column-first Strides of s from DefaultCache.
func StridesOf(s Shape) *Strides { return DefaultCache.Strides(s) }
