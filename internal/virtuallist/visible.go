package virtuallist

// rangeScan computes visible ranges over n items whose extents come from the size cache,
// falling back to a per-item estimate.
type rangeScan struct {
	n        int
	estimate int
	cache    *SizeCache
}

// peekExtent never measures and never changes the LRU order.
func (r rangeScan) peekExtent(index int) int {
	if e, ok := r.cache.Peek(index); ok {
		return e.Extent()
	}
	return r.estimate
}

// candidates is the detection pass. It flags every index whose span intersects
// [offset, offset+viewport+overscan), plus the last tail indices whenever the scan gets
// that far, because the real extent of the terminal items decides where the list ends.
func (r rangeScan) candidates(offset, viewport, overscan, tail int) []int {
	var out []int
	windowEnd := offset + viewport + overscan
	start := 0
	for i := 0; i < r.n && start < windowEnd; i++ {
		ext := r.peekExtent(i)
		if start+ext > offset || i >= r.n-tail {
			out = append(out, i)
		}
		start += ext
	}
	return out
}

// commit is the second pass. Extents are read with the same rule as candidates, so both
// passes agree on every offset unless a measurement landed in between. Committed items
// are promoted in the cache.
func (r rangeScan) commit(offset, viewport int) []VisibleItem {
	var out []VisibleItem
	end := offset + viewport
	start := 0
	for i := 0; i < r.n && start < end; i++ {
		ext := r.peekExtent(i)
		if start+ext > offset {
			r.cache.Get(i)
			out = append(out, VisibleItem{Index: i, Start: start, Extent: ext})
		}
		start += ext
	}
	return out
}

// offsetOf returns the start offset of index.
func (r rangeScan) offsetOf(index int) int {
	var start int
	for i := 0; i < index && i < r.n; i++ {
		start += r.peekExtent(i)
	}
	return start
}

// total sums every extent, measured or estimated.
func (r rangeScan) total() int {
	return r.offsetOf(r.n)
}
