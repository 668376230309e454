package virtuallist

// Relative cross-axis changes that select how much of the cache survives a resize of
// dynamically sized items.
const (
	clearAllRatio   = 0.30
	selectiveRatio  = 0.10
	measuredAtRatio = 0.15
)

// invalidation decides which cached sizes survive a change of the cross-axis extent.
type invalidation struct {
	cfg   Config
	cache *SizeCache
}

// apply handles a cross-axis change from one extent to another. visible reports whether
// an index is currently shown and anchor is the first visible index. It returns the
// number of dropped entries.
func (p invalidation) apply(mode SizingMode, from, to int, visible func(int) bool, anchor int) int {
	delta := abs(to - from)
	if delta < p.cfg.InvalidationThreshold {
		return 0
	}
	if mode == FixedSize {
		return p.sweep(delta)
	}

	if from <= 0 {
		return p.clear()
	}
	ratio := float64(delta) / float64(from)
	switch {
	case ratio > clearAllRatio:
		return p.clear()
	case ratio >= selectiveRatio:
		return p.removeIf(func(index int, e CacheEntry) bool {
			if e.MeasuredAt <= 0 {
				return true
			}
			return float64(abs(e.MeasuredAt-to))/float64(e.MeasuredAt) > measuredAtRatio
		})
	default:
		return p.removeIf(func(index int, e CacheEntry) bool {
			if !crossesBreakpoint(p.cfg.Breakpoints, e.MeasuredAt, to) {
				return false
			}
			return visible(index) || abs(index-anchor) <= p.cfg.ProximityItems
		})
	}
}

// sweep ages fixed size entries on large changes and prunes the ones nobody re-measured
// for StaleGenerations sweeps.
func (p invalidation) sweep(delta int) int {
	if delta <= p.cfg.FixedSweepThreshold {
		return 0
	}
	gen := p.cache.Tick()
	if gen <= p.cfg.StaleGenerations {
		return 0
	}
	return p.cache.PruneOlderThan(gen - p.cfg.StaleGenerations)
}

func (p invalidation) clear() int {
	n := p.cache.Len()
	p.cache.Clear()
	return n
}

func (p invalidation) removeIf(pred func(int, CacheEntry) bool) int {
	var n int
	for _, index := range p.cache.Indices() {
		e, ok := p.cache.Peek(index)
		if ok && pred(index, e) {
			p.cache.Remove(index)
			n++
		}
	}
	return n
}

// crossesBreakpoint reports whether a breakpoint lies in (min(a,b), max(a,b)].
func crossesBreakpoint(breakpoints []int, a, b int) bool {
	lo, hi := min(a, b), max(a, b)
	for _, bp := range breakpoints {
		if bp > lo && bp <= hi {
			return true
		}
	}
	return false
}
