package virtuallist

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/slices"
)

// settleRounds bounds how often a visible range is recomputed after measurements moved
// items into view that had no panel yet, and how often the end offset is reconciled.
const settleRounds = 6

type List struct {
	cfg  Config
	host Host
	mode SizingMode
	log  logr.Logger

	source   DataSource
	renderer Renderer

	cache    *SizeCache
	pool     *Pool
	registry *Registry
	active   map[int]Surface
	batcher  *batcher

	viewport  Size
	offset    int
	pinned    bool
	endExtent int
	// count is the item count seen by the last update.
	count     int
	visible   []VisibleItem
	lastBatch *Batch
}

func New(host Host, cfg Config) (*List, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &List{
		cfg:      cfg,
		host:     host,
		mode:     cfg.Mode,
		log:      cfg.Logger,
		cache:    NewSizeCache(cfg.CacheCapacity, cfg.Tolerance, cfg.Orientation),
		pool:     NewPool(host),
		registry: NewRegistry(),
		active:   map[int]Surface{},
	}
	l.batcher = &batcher{
		host:     host,
		pool:     l.pool,
		registry: l.registry,
		cache:    l.cache,
		active:   l.active,
		orient:   cfg.Orientation,
		log:      l.log,
	}
	return l, nil
}

// SetDataSource replaces the data source and scrolls back to the start. Cached sizes and
// panel contexts belong to the previous source and are dropped.
func (l *List) SetDataSource(source DataSource) error {
	l.batcher.releaseAll()
	l.registry.Clear()
	l.cache.Clear()
	l.offset = 0
	l.pinned = false
	l.endExtent = 0
	l.source = source
	return l.updateIfReady()
}

// SetRenderer replaces the renderer. Surfaces built by the previous renderer are destroyed.
func (l *List) SetRenderer(renderer Renderer) error {
	l.batcher.releaseAll()
	l.registry.Clear()
	l.pool.ClearAll()
	l.cache.Clear()
	l.endExtent = 0
	l.renderer = renderer
	return l.updateIfReady()
}

func (l *List) SetSizingMode(mode SizingMode) error {
	if mode == l.mode {
		return nil
	}
	l.mode = mode
	l.cache.Clear()
	l.endExtent = 0
	return l.updateIfReady()
}

func (l *List) SizingMode() SizingMode {
	return l.mode
}

// Resize sets the viewport extent. A cross-axis change runs the invalidation policy first.
func (l *List) Resize(size Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfiguration, size.Width, size.Height)
	}
	from, to := l.viewport.across(l.cfg.Orientation), size.across(l.cfg.Orientation)
	l.viewport = size

	var refresh bool
	if from != to {
		p := invalidation{cfg: l.cfg, cache: l.cache}
		n := p.apply(l.mode, from, to, l.isVisible, l.anchor())
		refresh = l.mode == DynamicSize && abs(to-from) >= l.cfg.InvalidationThreshold
		if n > 0 || refresh {
			l.endExtent = 0
		}
		l.log.V(4).Info("cross extent changed", "from", from, "to", to, "invalidated", n)
	}
	if l.ready() != nil {
		return nil
	}
	return l.update(refresh)
}

func (l *List) Viewport() Size {
	return l.viewport
}

func (l *List) Offset() int {
	return l.offset
}

func (l *List) ScrollTo(offset int) error {
	return l.scrollTo(offset, offset >= l.offset)
}

func (l *List) ScrollBy(delta int) error {
	return l.scrollTo(l.offset+delta, delta > 0)
}

// ScrollToRatio scrolls to a fraction of the scrollable range, as a scrollbar drag does.
func (l *List) ScrollToRatio(ratio float64) error {
	ratio = clamp(ratio, 0, 1)
	if ratio == 1 {
		return l.ScrollToEnd()
	}
	return l.ScrollTo(int(ratio * float64(l.maxOffset())))
}

func (l *List) ScrollToEnd() error {
	if err := l.ready(); err != nil {
		return err
	}
	l.pinned = l.source.Count() > 0
	return l.update(false)
}

// ScrollToItem aligns the start of item index with the start of the viewport.
func (l *List) ScrollToItem(index int) error {
	if err := l.ready(); err != nil {
		return err
	}
	n := l.source.Count()
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, index, n)
	}
	if index == n-1 {
		return l.ScrollToEnd()
	}
	target := l.scan().offsetOf(index)
	return l.scrollTo(target, target >= l.offset)
}

// Update recomputes the visible range and applies it.
func (l *List) Update() error {
	if err := l.ready(); err != nil {
		return err
	}
	return l.update(false)
}

// Refresh drops every cached size and pushes fresh content into all visible panels.
func (l *List) Refresh() error {
	l.cache.Clear()
	l.endExtent = 0
	if err := l.ready(); err != nil {
		return err
	}
	return l.update(true)
}

// Clear releases and destroys every panel and forgets all measurements.
func (l *List) Clear() {
	l.batcher.releaseAll()
	l.registry.Clear()
	l.pool.ClearAll()
	l.cache.Clear()
	l.offset = 0
	l.pinned = false
	l.endExtent = 0
	l.count = 0
	l.visible = nil
	l.lastBatch = nil
}

// Destroy tears the list down. It can not be used afterwards without a new source and
// renderer.
func (l *List) Destroy() {
	l.Clear()
	l.source = nil
	l.renderer = nil
}

func (l *List) VisibleRange() []VisibleItem {
	return slices.Clone(l.visible)
}

func (l *List) PoolStats() PoolStats {
	return l.pool.Stats()
}

func (l *List) CacheStats() CacheStats {
	return l.cache.Stats()
}

// Measurement returns the cached measurement of index without affecting eviction order.
func (l *List) Measurement(index int) (MeasurementState, bool) {
	e, ok := l.cache.Peek(index)
	if !ok {
		return nil, false
	}
	return e.State, true
}

// LastBatch returns the operations applied by the most recent update.
func (l *List) LastBatch() *Batch {
	return l.lastBatch
}

// HitTest maps a point in viewport coordinates to the item shown there.
func (l *List) HitTest(p Point) (int, error) {
	if p.X < 0 || p.Y < 0 {
		return -1, fmt.Errorf("%w: point %d,%d", ErrInvalidConfiguration, p.X, p.Y)
	}
	at := p.along(l.cfg.Orientation) + l.offset
	for _, item := range l.visible {
		if at >= item.Start && at < item.End() {
			return item.Index, nil
		}
	}
	return -1, ErrNoItem
}

// Context resolves the item a surface currently represents. Event handlers bound to a
// panel must call this when they fire, the panel may show another item by then.
func (l *List) Context(id SurfaceID) (PanelContext, error) {
	ctx, ok := l.registry.Lookup(id)
	if !ok {
		return PanelContext{}, fmt.Errorf("%w: surface %d", ErrContextNotFound, id)
	}
	return ctx, nil
}

func (l *List) ready() error {
	if l.source == nil {
		return ErrNoDataSource
	}
	if l.renderer == nil {
		return ErrNoRenderer
	}
	return nil
}

func (l *List) updateIfReady() error {
	if l.ready() != nil {
		return nil
	}
	return l.update(false)
}

func (l *List) scan() rangeScan {
	var n int
	if l.source != nil {
		n = l.source.Count()
	}
	return rangeScan{n: n, estimate: l.cfg.EstimatedItemSize, cache: l.cache}
}

func (l *List) isVisible(index int) bool {
	for _, item := range l.visible {
		if item.Index == index {
			return true
		}
	}
	return false
}

func (l *List) anchor() int {
	if len(l.visible) == 0 {
		return 0
	}
	return l.visible[0].Index
}

// update runs one full cycle: detect candidates, measure them in one batch, commit the
// visible range, reconcile the end of the list and apply positions. A pinned list queues
// the terminal item with the candidates so both share the relayout.
func (l *List) update(refresh bool) error {
	view := l.viewport.along(l.cfg.Orientation)
	cross := l.viewport.across(l.cfg.Orientation)
	b := l.batcher.begin(l.source, l.renderer, cross, l.cfg.EstimatedItemSize, refresh)

	n := l.source.Count()
	if n < l.count {
		l.endExtent = 0
	}
	l.count = n

	if l.pinned {
		l.queueEnd(b)
		l.offset = l.endOffset()
	} else {
		l.offset = clamp(l.offset, 0, l.maxOffset())
	}

	scan := l.scan()
	for _, index := range scan.candidates(l.offset, view, l.cfg.Overscan, l.cfg.TailItems) {
		l.prepare(b, index)
	}
	l.batcher.measure(b)
	if l.pinned {
		l.offset = l.endOffset()
	}
	items := l.settle(b, view)

	// Panels created while settling move the tail, so the end offset is recomputed until
	// it holds still.
	for i := 0; l.pinned && i < settleRounds; i++ {
		end := l.endOffset()
		if end == l.offset {
			break
		}
		l.offset = end
		items = l.settle(b, view)
	}

	b.Place(items, l.offset)
	l.batcher.commit(b)
	l.visible = items
	l.lastBatch = b
	return nil
}

// settle commits the visible range and measures items that entered it without a panel,
// recomputing at most settleRounds times. Items still without a panel afterwards are
// left out when placing.
func (l *List) settle(b *Batch, view int) []VisibleItem {
	items := l.scan().commit(l.offset, view)
	for round := 0; round < settleRounds; round++ {
		var missing bool
		for _, item := range items {
			if _, ok := l.active[item.Index]; !ok {
				l.prepare(b, item.Index)
				missing = true
			}
		}
		if !missing {
			break
		}
		l.batcher.measure(b)
		items = l.scan().commit(l.offset, view)
	}
	return items
}

func (l *List) prepare(b *Batch, index int) {
	_, active := l.active[index]
	_, cached := l.cache.Peek(index)
	b.Prepare(index, active, cached)
}
