package virtuallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filledCache(n, measuredAt int) *SizeCache {
	c := NewSizeCache(100, 2, Vertical)
	for i := 0; i < n; i++ {
		c.Observe(i, Size{Width: measuredAt, Height: 40}, measuredAt)
	}
	return c
}

func noneVisible(int) bool { return false }

func TestInvalidationDynamic(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"below threshold", 800, 804, 0},
		{"doubled", 800, 1600, 50},
		{"shrunk by half", 800, 400, 50},
		{"twenty percent", 800, 960, 50},
		{"small without breakpoint", 800, 840, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filledCache(50, tt.from)
			p := invalidation{cfg: cfg, cache: c}
			assert.Equal(t, tt.want, p.apply(DynamicSize, tt.from, tt.to, noneVisible, 0))
			assert.Equal(t, 50-tt.want, c.Len())
		})
	}
}

func TestInvalidationMeasuredAt(t *testing.T) {
	cfg := DefaultConfig()
	c := NewSizeCache(100, 2, Vertical)
	c.Observe(0, Size{Height: 40}, 800)
	c.Observe(1, Size{Height: 40}, 950)
	c.Observe(2, Size{Height: 40}, 1200)

	p := invalidation{cfg: cfg, cache: c}
	// 800 -> 960 is a 20% change; only entries measured more than 15% away from 960 go
	assert.Equal(t, 2, p.apply(DynamicSize, 800, 960, noneVisible, 0))
	assert.Equal(t, []int{1}, c.Indices())
}

func TestInvalidationBreakpoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProximityItems = 5
	c := filledCache(50, 1020)
	p := invalidation{cfg: cfg, cache: c}

	visible := func(i int) bool { return i >= 30 && i < 33 }
	// 1020 -> 1030 crosses 1024: only visible items and items near the anchor go
	n := p.apply(DynamicSize, 1020, 1030, visible, 10)
	assert.Equal(t, 11+3, n)
	for _, i := range c.Indices() {
		assert.False(t, visible(i))
		assert.False(t, i >= 5 && i <= 15, "index %d near anchor survived", i)
	}
}

func TestInvalidationFixed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaleGenerations = 2
	c := filledCache(10, 800)
	p := invalidation{cfg: cfg, cache: c}

	assert.Zero(t, p.apply(FixedSize, 800, 1600, noneVisible, 0), "first sweep only ages entries")
	assert.Zero(t, p.apply(FixedSize, 800, 850, noneVisible, 0), "changes up to 100px never sweep")
	assert.Equal(t, 10, c.Len())

	c.Observe(3, Size{Width: 1600, Height: 40}, 1600)
	c.Tick()
	// generation is now 2; the next sweep makes it 3 and prunes generation 0
	assert.Equal(t, 9, p.apply(FixedSize, 1600, 800, noneVisible, 0))
	assert.Equal(t, []int{3}, c.Indices())
}

func TestCrossesBreakpoint(t *testing.T) {
	assert.True(t, crossesBreakpoint(DefaultBreakpoints, 1000, 1024))
	assert.True(t, crossesBreakpoint(DefaultBreakpoints, 1024, 1000) == crossesBreakpoint(DefaultBreakpoints, 1000, 1024))
	assert.False(t, crossesBreakpoint(DefaultBreakpoints, 1024, 1100))
	assert.False(t, crossesBreakpoint(DefaultBreakpoints, 800, 804))
}
