package extract

import (
	"container/list"
	"context"
	"sync"

	"github.com/fwojciec/pith"
)

var _ pith.ContentCache = (*MemoryCache)(nil)

// MemoryCache is an in-process LRU content cache. Its entry-count and
// accounted-size bounds apply jointly: whichever is exceeded first evicts
// the least recently used entries. TTL enforcement stays with the caller.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	maxBytes   int
	items      map[string]*list.Element
	order      *list.List // front is most recently used
	size       int
}

type cacheItem struct {
	key   string
	entry *pith.CacheEntry
	size  int
}

// NewMemoryCache creates a cache bounded by maxEntries entries and maxSizeMB
// accounted megabytes. Non-positive bounds take the defaults.
func NewMemoryCache(maxEntries, maxSizeMB int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = pith.DefaultCacheMaxEntries
	}
	if maxSizeMB <= 0 {
		maxSizeMB = pith.DefaultCacheMaxSizeMB
	}
	return &MemoryCache{
		maxEntries: maxEntries,
		maxBytes:   maxSizeMB << 20,
		items:      make(map[string]*list.Element),
		order:      list.New(),
	}
}

// Get returns the entry for key and marks it most recently used.
// Returns ENOTFOUND when absent. Stale entries are still returned; judging
// staleness against a TTL is the caller's policy.
func (c *MemoryCache) Get(ctx context.Context, key string) (*pith.CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, pith.Errorf(pith.ENOTFOUND, "cache entry not found")
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheItem).entry, nil
}

// Set stores an entry, replacing any previous entry for key, then evicts
// least recently used entries until both bounds hold again. A lone entry
// larger than the size bound is kept.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *pith.CacheEntry) error {
	size := entrySize(entry)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		item := el.Value.(*cacheItem)
		c.size += size - item.size
		item.entry = entry
		item.size = size
		c.order.MoveToFront(el)
	} else {
		c.items[key] = c.order.PushFront(&cacheItem{key: key, entry: entry, size: size})
		c.size += size
	}

	for c.order.Len() > 1 && (c.order.Len() > c.maxEntries || c.size > c.maxBytes) {
		c.evictOldest()
	}
	return nil
}

// Delete removes the entry for key if present.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.size = 0
	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *MemoryCache) evictOldest() {
	if el := c.order.Back(); el != nil {
		c.remove(el)
	}
}

func (c *MemoryCache) remove(el *list.Element) {
	item := el.Value.(*cacheItem)
	c.order.Remove(el)
	delete(c.items, item.key)
	c.size -= item.size
}

// entrySize accounts an entry as the byte length of its title, clean text,
// and paragraph HTML.
func entrySize(entry *pith.CacheEntry) int {
	if entry == nil || entry.Content == nil {
		return 0
	}
	size := len(entry.Content.Title) + len(entry.Content.CleanText)
	for i := range entry.Content.Paragraphs {
		size += len(entry.Content.Paragraphs[i].HTML)
	}
	return size
}
