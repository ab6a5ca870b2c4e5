package paint

import (
	"image"
	"image/color"
	"sync"

	"audio-diagram/internal/vehicle"
)

// Key identifies one recolored silhouette for the session cache.
type Key struct {
	Archetype vehicle.Archetype
	Color     color.RGBA
}

// Cache holds recolored silhouette buffers for the session, keyed by
// (archetype, body color). Recoloring runs once per pair; subsequent renders
// reuse the buffer until the archetype or color changes.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*image.RGBA
}

// NewCache creates an empty recolor cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*image.RGBA)}
}

// Recolored returns the cached buffer for the key, recoloring and storing it
// on a miss. A nil source yields nil without caching.
func (c *Cache) Recolored(key Key, src image.Image) *image.RGBA {
	c.mu.RLock()
	buf, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	if src == nil {
		return nil
	}

	buf = Recolor(src, key.Color)

	c.mu.Lock()
	c.entries[key] = buf
	c.mu.Unlock()
	return buf
}

// Invalidate drops a single cache entry.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops all cached buffers.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Key]*image.RGBA)
	c.mu.Unlock()
}

// Len returns the number of cached buffers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
