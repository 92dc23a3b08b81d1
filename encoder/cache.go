package encoder

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/qrgrid"
)

// DefaultCacheCapacity is the number of matrices kept by WithCache(0).
const DefaultCacheCapacity = 64

type cacheKey struct {
	text  string
	level qrgrid.ECLevel
}

type cacheEntry struct {
	key cacheKey
	m   *qrgrid.Matrix
}

// matrixCache is a thread-safe LRU of encoded matrices. Matrices are
// immutable, so a hit returns the shared value.
type matrixCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*list.Element
	lru      *list.List // front is most recent

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newMatrixCache(capacity int) *matrixCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &matrixCache{
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element, capacity),
		lru:      list.New(),
	}
}

func (c *matrixCache) get(k cacheKey) (*qrgrid.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[k]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*cacheEntry).m, true
}

func (c *matrixCache) set(k cacheKey, m *qrgrid.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[k]; ok {
		el.Value.(*cacheEntry).m = m
		c.lru.MoveToFront(el)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	c.entries[k] = c.lru.PushFront(&cacheEntry{key: k, m: m})
}

func (c *matrixCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// CacheStats reports cache usage.
type CacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// WithCache keeps up to capacity encoded matrices, keyed by payload and
// level, so that re-encoding an unchanged payload skips the encoder.
// Failed encodings are not cached. A capacity <= 0 uses
// DefaultCacheCapacity.
func WithCache(capacity int) Option {
	return func(e *Encoder) {
		e.cache = newMatrixCache(capacity)
	}
}

// CacheStats returns the cache counters, or zero stats without a cache.
func (e *Encoder) CacheStats() CacheStats {
	if e.cache == nil {
		return CacheStats{}
	}
	return CacheStats{
		Len:    e.cache.len(),
		Hits:   e.cache.hits.Load(),
		Misses: e.cache.misses.Load(),
	}
}
