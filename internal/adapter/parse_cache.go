package adapter

import (
	"sync"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// ParseCache is a read-through store of already parsed files. It is the only
// state shared between concurrent resolution requests.
type ParseCache interface {
	// Get returns the parsed file for path if it was stored with the same
	// content hash.
	Get(path m.Path, hash string) (m.ParsedFile, bool)
	Put(parsed m.ParsedFile)
}

// MemoryParseCache keeps the latest parse of each path in memory.
type MemoryParseCache struct {
	mu      sync.RWMutex
	entries map[m.Path]m.ParsedFile
	hits    int
	misses  int
}

// NewMemoryParseCache returns an empty cache.
func NewMemoryParseCache() *MemoryParseCache {
	return &MemoryParseCache{entries: make(map[m.Path]m.ParsedFile)}
}

// Get implements ParseCache.
func (c *MemoryParseCache) Get(path m.Path, hash string) (m.ParsedFile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parsed, ok := c.entries[path]
	if !ok || parsed.Hash != hash {
		c.misses++

		return m.ParsedFile{}, false
	}

	c.hits++

	return parsed, true
}

// Put implements ParseCache. A newer parse of the same path replaces the old one.
func (c *MemoryParseCache) Put(parsed m.ParsedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[parsed.Path] = parsed
}

// Stats reports cache hits and misses so far.
func (c *MemoryParseCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, c.misses
}
