package rendercache

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/rs/zerolog"
)

// Cache is a fixed-capacity LRU of rendered assets keyed by formula text.
type Cache[A any] struct {
	mu       sync.Mutex // guards lru and purging
	lru      *simplelru.LRU[string, A]
	capacity int
	release  ReleaseFunc[A]
	purging  bool

	metrics counters
	log     zerolog.Logger
}

// New creates a Cache holding at most capacity assets.
// release is called for every asset that leaves the cache and may be nil.
func New[A any](capacity int, release ReleaseFunc[A], opts ...Option) (*Cache[A], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[A]{
		capacity: capacity,
		release:  release,
		metrics:  newCounters(o.Namespace),
		log:      o.Logger,
	}
	lru, err := simplelru.NewLRU[string, A](capacity, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCapacity, err)
	}
	c.lru = lru

	if o.Registerer != nil {
		if err := c.metrics.register(o.Registerer); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// GetOrRender returns the asset cached for text, rendering and inserting it on a miss.
//
// render, and release for any asset evicted by the insert, run while the
// cache mutex is held. They must not call back into the same Cache, or the
// call deadlocks.
func (c *Cache[A]) GetOrRender(text string, render RenderFunc[A]) (A, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if asset, ok := c.lru.Get(text); ok {
		c.metrics.hits.Inc()

		return asset, nil
	}
	if render == nil {
		var zero A

		return zero, ErrNilRender
	}

	c.metrics.misses.Inc()
	asset, err := render(text)
	if err != nil {
		c.metrics.failures.Inc()
		c.log.Warn().Err(err).Int("len", len(text)).Msg("formula render failed")

		var zero A

		return zero, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	c.lru.Add(text, asset)

	return asset, nil
}

// Contains reports whether text is cached without touching its recency.
func (c *Cache[A]) Contains(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Contains(text)
}

// Keys returns the cached texts from least to most recently used.
func (c *Cache[A]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Keys()
}

// Len returns the number of cached assets.
func (c *Cache[A]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

// Capacity returns the configured maximum size.
func (c *Cache[A]) Capacity() int { return c.capacity }

// Purge releases every cached asset and empties the cache.
// Purged assets are not counted as evictions. release runs under the cache
// mutex and must not call back into the Cache.
func (c *Cache[A]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purging = true
	defer func() { c.purging = false }()
	c.lru.Purge()
}

// onEvict runs under c.mu, called by simplelru on capacity eviction and on Purge.
func (c *Cache[A]) onEvict(text string, asset A) {
	if !c.purging {
		c.metrics.evictions.Inc()
		c.log.Debug().Int("len", len(text)).Msg("formula asset evicted")
	}
	if c.release != nil {
		c.release(text, asset)
	}
}
