package virtuallist

// baseExtent is the unpadded content extent. Fixed size lists use count × estimate so the
// figure does not move while items get measured.
func (l *List) baseExtent() int {
	if l.source == nil {
		return 0
	}
	if l.mode == FixedSize {
		return l.source.Count() * l.cfg.EstimatedItemSize
	}
	return l.scan().total()
}

// ContentExtent is the total extent along the scroll axis, mixing measured and estimated
// item sizes. Once the end of the list has been reached it includes the end padding.
func (l *List) ContentExtent() int {
	return max(l.baseExtent(), l.endExtent)
}

func (l *List) maxOffset() int {
	return max(0, l.ContentExtent()-l.viewport.along(l.cfg.Orientation))
}

func (l *List) baseMaxOffset() int {
	return max(0, l.baseExtent()-l.viewport.along(l.cfg.Orientation))
}

// Scrollbar derives the thumb position and size from the current offset and extent.
func (l *List) Scrollbar() ScrollbarState {
	total := l.ContentExtent()
	view := l.viewport.along(l.cfg.Orientation)
	maxScroll := max(0, total-view)

	state := ScrollbarState{Thumb: 1, Max: maxScroll}
	if maxScroll > 0 {
		state.Position = clamp(float64(l.offset)/float64(maxScroll), 0, 1)
	}
	if total > 0 {
		state.Thumb = clamp(float64(view)/float64(total), 0, 1)
	}
	return state
}

// scrollTo moves to target. Targets at or past the unpadded maximum pin the list to its
// end; moving backwards only pins when the target is past the padded maximum too, so a
// small step back from the end is not undone.
func (l *List) scrollTo(target int, forward bool) error {
	if err := l.ready(); err != nil {
		return err
	}
	target = max(target, 0)
	if l.source.Count() > 0 && target >= l.baseMaxOffset() && (forward || target >= l.maxOffset()) {
		l.pinned = true
	} else {
		l.pinned = false
		l.offset = target
	}
	return l.update(false)
}

// queueEnd queues the terminal item for a real measurement, even if it is cached.
func (l *List) queueEnd(b *Batch) {
	n := l.source.Count()
	if n == 0 {
		return
	}
	_, active := l.active[n-1]
	b.ForceMeasure(n-1, active)
}

// endOffset returns the offset at which the terminal item is fully visible, including the
// end padding, from the sizes known so far.
func (l *List) endOffset() int {
	n := l.source.Count()
	if n == 0 {
		l.endExtent = 0
		return 0
	}
	scan := l.scan()
	l.endExtent = scan.offsetOf(n-1) + scan.peekExtent(n-1) + l.cfg.EndPadding
	end := max(0, l.endExtent-l.viewport.along(l.cfg.Orientation))
	l.log.V(4).Info("pinned to end", "extent", l.endExtent, "offset", end)
	return end
}
