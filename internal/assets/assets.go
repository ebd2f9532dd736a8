// Package assets loads and caches biome images.
package assets

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Manager resolves biome images by logical name. Images loaded in the
// background become visible once decoded; until then Image reports false.
type Manager struct {
	cache *Cache
	log   *zap.Logger

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// NewManager creates an empty asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// Image returns the image registered under name.
func (m *Manager) Image(name string) (*image.RGBA, bool) {
	return m.cache.Get(name)
}

// Add registers img under name, resampling it to AssetSize if needed.
func (m *Manager) Add(name string, img image.Image) {
	m.cache.Set(name, Normalize(img))
}

// Names returns the logical names of the biome images.
func Names() []string {
	biomes := terrain.Biomes()
	names := make([]string, len(biomes))
	for i, b := range biomes {
		names[i] = b.Asset()
	}
	return names
}

// LoadDir loads every biome image from dir. With async set the files are
// decoded in background goroutines and LoadDir returns immediately; call
// Wait to collect errors. A file that fails to load is replaced by the
// built-in swatch of the same name.
func (m *Manager) LoadDir(dir string, async bool) error {
	for _, name := range Names() {
		m.wg.Add(1)
		if async {
			go m.load(dir, name)
		} else {
			m.load(dir, name)
		}
	}
	if async {
		return nil
	}
	return m.Wait()
}

func (m *Manager) load(dir, name string) {
	defer m.wg.Done()

	img, path, err := Find(dir, name)
	if err != nil {
		m.log.Warn("biome image unavailable, using built-in swatch",
			zap.String("name", name), zap.Error(err))
		m.mu.Lock()
		m.errs = append(m.errs, err)
		m.mu.Unlock()

		m.Add(name, Swatch(name))
		return
	}

	m.Add(name, img)
	m.log.Debug("biome image loaded", zap.String("name", name), zap.String("path", path))
}

// Wait blocks until background loads finish and returns their joined errors.
func (m *Manager) Wait() error {
	m.wg.Wait()
	return errors.Join(m.Errors()...)
}

// Errors returns the load failures recorded so far.
func (m *Manager) Errors() []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]error(nil), m.errs...)
}

// Builtin registers the procedural swatch for every biome.
func (m *Manager) Builtin() {
	for _, name := range Names() {
		m.Add(name, Swatch(name))
	}
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops every cached image.
func (m *Manager) Close() {
	m.wg.Wait()
	m.cache.Clear()
}

// Cache is a simple in-memory cache for decoded images.
type Cache struct {
	data map[string]*image.RGBA
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*image.RGBA),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*image.RGBA)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *Cache) String() string {
	hits, misses := c.Stats()
	return fmt.Sprintf("cache{images=%d hits=%d misses=%d}", c.Len(), hits, misses)
}
