package assets

import "sync"

// Cache keeps fetched asset bytes by location.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	misses  int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

// Get returns the bytes stored for location.
func (c *Cache) Get(location string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.entries[location]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Put stores bytes for location, replacing any previous entry.
func (c *Cache) Put(location string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[location] = data
}

// Len returns the number of cached locations.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
