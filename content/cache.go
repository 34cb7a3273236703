package content

import (
	"sync"
	"time"
)

// Cache holds the current Content and swaps it on reload.
type Cache struct {
	mu      sync.RWMutex
	content Content
	loaded  time.Time
	path    string
}

// NewCache returns a Cache serving c. path is the file Reload reads; empty
// means the content is fixed.
func NewCache(c Content, path string) *Cache {
	return &Cache{content: c, path: path, loaded: time.Now()}
}

// Open loads path, or the embedded default when path is empty.
func Open(path string) (*Cache, error) {
	if path == "" {
		return NewCache(Default(), ""), nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewCache(c, path), nil
}

// Get returns the current content.
func (c *Cache) Get() Content {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content
}

// LoadedAt returns when the current content was loaded.
func (c *Cache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Path returns the backing file, if any.
func (c *Cache) Path() string { return c.path }

// Reload re-reads the backing file. On error the previous content stays.
func (c *Cache) Reload() error {
	if c.path == "" {
		return nil
	}
	next, err := Load(c.path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.content = next
	c.loaded = time.Now()
	c.mu.Unlock()
	return nil
}
