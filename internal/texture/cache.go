package texture

import (
	"fmt"
	"image"
	"sync"
)

// Resolver resolves a texture name to a decoded image.
type Resolver interface {
	Resolve(name string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache over an Index. Each file is
// decoded at most once; failed loads are remembered too.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(name string) (*image.NRGBA, error) {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil, fmt.Errorf("texture: %q not found", name)
	}

	c.mu.RLock()
	entry, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return entry.img, entry.err
	}

	img, err := LoadTexture(path)

	// Double-check: another goroutine may have loaded it meanwhile.
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}

// Len returns the number of files attempted so far.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
