package virtuallist

import (
	"container/list"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CacheEntry is the last known measurement of one item.
type CacheEntry struct {
	Size  Size
	State MeasurementState
	// MeasuredAt is the cross-axis viewport extent the measurement was taken at.
	MeasuredAt int
	Generation uint64
}

// Extent is the trusted extent along the scroll axis.
func (e CacheEntry) Extent() int {
	if e.State == nil {
		return 0
	}
	return e.State.Extent()
}

type cacheItem struct {
	index int
	entry CacheEntry
}

// SizeCache is an LRU bounded map from item index to its measured size.
type SizeCache struct {
	capacity   int
	tolerance  int
	orient     Orientation
	generation uint64

	items map[int]*list.Element
	lru   *list.List

	hits, misses, evictions uint64
}

func NewSizeCache(capacity, tolerance int, orientation Orientation) *SizeCache {
	return &SizeCache{
		capacity:  max(capacity, 1),
		tolerance: tolerance,
		orient:    orientation,
		items:     map[int]*list.Element{},
		lru:       list.New(),
	}
}

// Get returns the entry for index and marks it most recently used.
func (c *SizeCache) Get(index int) (CacheEntry, bool) {
	el, ok := c.items[index]
	if !ok {
		c.misses++
		return CacheEntry{}, false
	}
	c.hits++
	c.lru.MoveToFront(el)
	return el.Value.(*cacheItem).entry, true
}

// Peek returns the entry for index without touching the LRU order.
func (c *SizeCache) Peek(index int) (CacheEntry, bool) {
	el, ok := c.items[index]
	if !ok {
		return CacheEntry{}, false
	}
	return el.Value.(*cacheItem).entry, true
}

// Insert stores entry as most recently used and evicts the least recently used entry if
// the cache went over capacity.
func (c *SizeCache) Insert(index int, entry CacheEntry) {
	if el, ok := c.items[index]; ok {
		el.Value.(*cacheItem).entry = entry
		c.lru.MoveToFront(el)
		return
	}
	c.items[index] = c.lru.PushFront(&cacheItem{index: index, entry: entry})
	if c.lru.Len() > c.capacity {
		c.evictOldest()
	}
}

// Observe records a fresh measurement of index through the confidence rule and returns
// the resulting entry.
func (c *SizeCache) Observe(index int, size Size, crossExtent int) CacheEntry {
	var prev MeasurementState
	if e, ok := c.Peek(index); ok {
		prev = e.State
	}
	entry := CacheEntry{
		Size:       size,
		State:      Advance(prev, size.along(c.orient), c.tolerance),
		MeasuredAt: crossExtent,
		Generation: c.generation,
	}
	c.Insert(index, entry)
	return entry
}

func (c *SizeCache) Remove(index int) bool {
	el, ok := c.items[index]
	if !ok {
		return false
	}
	c.lru.Remove(el)
	delete(c.items, index)
	return true
}

// Clear drops every entry and starts a new generation.
func (c *SizeCache) Clear() {
	c.items = map[int]*list.Element{}
	c.lru.Init()
	c.generation++
}

// Tick starts a new generation without dropping entries.
func (c *SizeCache) Tick() uint64 {
	c.generation++
	return c.generation
}

// PruneOlderThan removes entries last measured before generation gen.
func (c *SizeCache) PruneOlderThan(gen uint64) int {
	var n int
	for _, index := range c.Indices() {
		if e, _ := c.Peek(index); e.Generation < gen {
			c.Remove(index)
			n++
		}
	}
	return n
}

func (c *SizeCache) Len() int {
	return c.lru.Len()
}

func (c *SizeCache) Capacity() int {
	return c.capacity
}

func (c *SizeCache) Generation() uint64 {
	return c.generation
}

// Indices returns the cached indices in ascending order.
func (c *SizeCache) Indices() []int {
	keys := maps.Keys(c.items)
	slices.Sort(keys)
	return keys
}

// Oldest returns the index that would be evicted next.
func (c *SizeCache) Oldest() (int, bool) {
	el := c.lru.Back()
	if el == nil {
		return 0, false
	}
	return el.Value.(*cacheItem).index, true
}

func (c *SizeCache) Stats() CacheStats {
	return CacheStats{
		Len:        c.Len(),
		Capacity:   c.capacity,
		Generation: c.generation,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
}

func (c *SizeCache) evictOldest() {
	el := c.lru.Back()
	if el == nil {
		return
	}
	c.lru.Remove(el)
	delete(c.items, el.Value.(*cacheItem).index)
	c.evictions++
}
