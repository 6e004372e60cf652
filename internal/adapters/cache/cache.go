// Package cache keeps encoded chart images so repeated requests skip
// rasterization. The dataset never changes after startup, so entries
// never go stale; the bound only limits memory.
package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/quantumtech/internal/domain/types"
)

// defaultMaxEntries covers every view, selection and format of the dataset.
const defaultMaxEntries = 64

// node is one entry of the recency list.
type node struct {
	key        string
	value      types.Payload
	prev, next *node
}

// ImageCache is a bounded LRU of encoded images.
// For maxEntries <= 0 it is unbounded and never evicts.
type ImageCache struct {
	mu         sync.Mutex
	entries    map[string]*node
	head, tail *node // head is the most recently used
	maxEntries int

	hits, misses, evictions atomic.Int64
}

// New creates an image cache with configuration options.
func New(opts ...Option) *ImageCache {
	c := &ImageCache{maxEntries: defaultMaxEntries}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*node)
	return c
}

// Key joins the parts that identify one image.
func Key(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

// Get returns the image stored under key and marks it as recently used.
func (c *ImageCache) Get(ctx context.Context, key string) (types.Payload, bool) {
	if ctx.Err() != nil {
		return types.Payload{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return types.Payload{}, false
	}
	c.moveToFront(n)
	c.hits.Add(1)
	return n.value, true
}

// Put stores p under key, evicting the least recently used entry when full.
func (c *ImageCache) Put(ctx context.Context, key string, p types.Payload) {
	if ctx.Err() != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = p
		c.moveToFront(n)
		return
	}
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	n := &node{key: key, value: p}
	c.pushFront(n)
	c.entries[key] = n
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit, miss and eviction counts since creation.
func (c *ImageCache) Stats() (hits, misses, evictions int64) {
	return c.hits.Load(), c.misses.Load(), c.evictions.Load()
}

// Must be called with c.mu held.
func (c *ImageCache) pushFront(n *node) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// Must be called with c.mu held.
func (c *ImageCache) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// Must be called with c.mu held.
func (c *ImageCache) moveToFront(n *node) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

// Must be called with c.mu held.
func (c *ImageCache) evictOldest() {
	if c.tail == nil {
		return
	}
	oldest := c.tail
	c.unlink(oldest)
	delete(c.entries, oldest.key)
	c.evictions.Add(1)
}
