package virtuallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(extent int) CacheEntry {
	return CacheEntry{Size: Size{Width: 100, Height: extent}, State: Measured{Value: extent}, MeasuredAt: 100}
}

func TestSizeCacheBound(t *testing.T) {
	c := NewSizeCache(3, 2, Vertical)
	for i := 0; i < 10; i++ {
		c.Insert(i, entry(10+i))
		assert.LessOrEqual(t, c.Len(), 3)
	}
	assert.Equal(t, []int{7, 8, 9}, c.Indices())
	assert.Equal(t, uint64(7), c.Stats().Evictions)
}

func TestSizeCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSizeCache(3, 2, Vertical)
	c.Insert(1, entry(10))
	c.Insert(2, entry(20))
	c.Insert(3, entry(30))

	_, ok := c.Get(1)
	require.True(t, ok)

	c.Insert(4, entry(40))
	_, ok = c.Peek(2)
	assert.False(t, ok, "2 was least recently used")
	assert.Equal(t, []int{1, 3, 4}, c.Indices())
}

func TestSizeCacheUpsertPromotes(t *testing.T) {
	c := NewSizeCache(2, 2, Vertical)
	c.Insert(1, entry(10))
	c.Insert(2, entry(20))
	c.Insert(1, entry(11))
	c.Insert(3, entry(30))

	e, ok := c.Peek(1)
	require.True(t, ok)
	assert.Equal(t, 11, e.Extent())
	_, ok = c.Peek(2)
	assert.False(t, ok)
}

func TestSizeCachePeekKeepsOrder(t *testing.T) {
	fill := func(c *SizeCache) {
		for i := 0; i < 4; i++ {
			c.Insert(i, entry(10))
		}
	}

	a := NewSizeCache(4, 2, Vertical)
	fill(a)
	b := NewSizeCache(4, 2, Vertical)
	fill(b)
	for i := 0; i < 50; i++ {
		b.Peek(0)
		b.Peek(1)
	}

	for i := 10; i < 14; i++ {
		ia, _ := a.Oldest()
		ib, _ := b.Oldest()
		assert.Equal(t, ia, ib)
		a.Insert(i, entry(10))
		b.Insert(i, entry(10))
	}
	assert.Equal(t, a.Indices(), b.Indices())
}

func TestSizeCacheObserve(t *testing.T) {
	c := NewSizeCache(10, 2, Vertical)
	e := c.Observe(5, Size{Width: 300, Height: 70}, 300)
	assert.Equal(t, Measured{Value: 70}, e.State)
	assert.Equal(t, 300, e.MeasuredAt)

	c.Observe(5, Size{Width: 300, Height: 71}, 300)
	e = c.Observe(5, Size{Width: 300, Height: 70}, 300)
	assert.Equal(t, Verified{Value: 70, StableCount: 1}, e.State)

	e = c.Observe(5, Size{Width: 200, Height: 120}, 200)
	assert.Equal(t, Measured{Value: 120}, e.State)
	assert.Equal(t, 120, e.Extent())
}

func TestSizeCacheObserveHorizontal(t *testing.T) {
	c := NewSizeCache(10, 2, Horizontal)
	e := c.Observe(0, Size{Width: 90, Height: 30}, 30)
	assert.Equal(t, 90, e.Extent())
}

func TestSizeCacheClearAndPrune(t *testing.T) {
	c := NewSizeCache(10, 2, Vertical)
	c.Observe(1, Size{Height: 10}, 100)
	gen := c.Tick()
	c.Observe(2, Size{Height: 10}, 100)

	assert.Equal(t, 1, c.PruneOlderThan(gen))
	assert.Equal(t, []int{2}, c.Indices())

	before := c.Generation()
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, before+1, c.Generation())
}

func TestSizeCacheRemove(t *testing.T) {
	c := NewSizeCache(10, 2, Vertical)
	c.Insert(1, entry(10))
	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Misses)
}
