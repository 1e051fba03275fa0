package weatherapi

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedSource wraps a Source with an in-memory LRU cache whose entries
// expire after a TTL.
type CachedSource struct {
	inner   Source
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
	cache   *lruCache
}

// NewCachedSource creates a cache decorator around a source. A ttl of zero
// or less disables caching.
func NewCachedSource(inner Source, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedSource {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedSource{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
		cache:   newLRUCache(maxEntries),
	}
}

func (c *CachedSource) FetchForecast(ctx context.Context, days int) ([]byte, error) {
	key := "days:" + strconv.Itoa(days)
	if body, ok := c.cache.get(key, c.clock.Now()); ok {
		c.metrics.ProviderCache.WithLabelValues("hit").Inc()
		return body, nil
	}
	c.metrics.ProviderCache.WithLabelValues("miss").Inc()

	body, err := c.inner.FetchForecast(ctx, days)
	if err != nil {
		return nil, err
	}
	if c.ttl > 0 {
		c.cache.put(key, body, c.clock.Now().Add(c.ttl))
	}
	return body, nil
}

// lruCache is a thread-safe LRU cache of payloads with per-entry expiry.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key     string
	value   []byte
	expires time.Time
	prev    *entry
	next    *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string, now time.Time) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !now.Before(e.expires) {
		delete(c.entries, key)
		c.unlink(e)
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []byte, expires time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expires = expires
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expires: expires}
	c.entries[key] = e
	c.pushFront(e)

	for len(c.entries) > c.maxEntries && c.tail != nil {
		delete(c.entries, c.tail.key)
		c.unlink(c.tail)
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *lruCache) pushFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
