package virtuallist

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"k8s.io/utils/set"
)

type Phase int

const (
	PhaseContent Phase = iota + 1
	PhaseRelayout
	PhaseMeasure
	PhaseCommit
	PhasePlace
	PhaseReclaim
)

func (p Phase) String() string {
	switch p {
	case PhaseContent:
		return "content"
	case PhaseRelayout:
		return "relayout"
	case PhaseMeasure:
		return "measure"
	case PhaseCommit:
		return "commit"
	case PhasePlace:
		return "place"
	case PhaseReclaim:
		return "reclaim"
	}
	return "unknown"
}

// Op is one executed step of a batch. Index is -1 for the relayout step.
type Op struct {
	Phase Phase
	Index int
}

type touched struct {
	index   int
	surface Surface
}

// batcher applies panel side effects for one visible range computation. Work is queued
// on a Batch and executed in phase order: all content updates, a single relayout, all
// measurements, all cache commits, then positioning, then reclaiming.
type batcher struct {
	host     Host
	pool     *Pool
	registry *Registry
	cache    *SizeCache
	active   map[int]Surface
	orient   Orientation
	log      logr.Logger
}

// Batch is the queued work of one update.
type Batch struct {
	source   DataSource
	renderer Renderer
	cross    int
	estimate int
	// refresh forces a content update of already active panels.
	refresh bool

	content  []int
	measure  []int
	prepared set.Set[int]
	// observed holds the indices whose measurement was committed in this batch. Each is
	// observed at most once per update so confidence only advances across cycles.
	observed set.Set[int]
	place    []VisibleItem
	offset   int

	Ops []Op
}

func (b *batcher) begin(source DataSource, renderer Renderer, cross, estimate int, refresh bool) *Batch {
	return &Batch{
		source:   source,
		renderer: renderer,
		cross:    cross,
		estimate: estimate,
		refresh:  refresh,
		prepared: set.New[int](),
		observed: set.New[int](),
	}
}

// Prepare queues index for content and measurement if it needs either. Items already
// prepared in this batch are skipped.
func (b *Batch) Prepare(index int, active bool, cached bool) {
	if b.prepared.Has(index) {
		return
	}
	b.prepared.Insert(index)
	switch {
	case !active || b.refresh:
		b.content = append(b.content, index)
		b.measure = append(b.measure, index)
	case !cached:
		b.measure = append(b.measure, index)
	}
}

// ForceMeasure queues index for measurement even if it is cached, unless it was already
// measured in this batch.
func (b *Batch) ForceMeasure(index int, active bool) {
	if b.observed.Has(index) {
		return
	}
	if !active && !slices.Contains(b.content, index) {
		b.content = append(b.content, index)
	}
	b.prepared.Insert(index)
	if !slices.Contains(b.measure, index) {
		b.measure = append(b.measure, index)
	}
}

func (b *Batch) Place(items []VisibleItem, offset int) {
	b.place = items
	b.offset = offset
}

func (b *Batch) record(p Phase, index int) {
	b.Ops = append(b.Ops, Op{Phase: p, Index: index})
}

// measure runs the content, relayout, measure and commit phases for everything queued
// since the last call.
func (bt *batcher) measure(b *Batch) {
	content := b.content
	measure := slices.DeleteFunc(b.measure, b.observed.Has)
	b.content, b.measure = nil, nil
	if len(measure) == 0 && len(content) == 0 {
		return
	}

	provisional := sizeOf(bt.orient, b.estimate, b.cross)
	for _, index := range content {
		s, ok := bt.active[index]
		if !ok {
			s = bt.pool.GetOrCreate(bt.host, func() Surface {
				return b.renderer.CreateSurface(bt.host)
			})
			bt.active[index] = s
			bt.host.Hide(s)
			bt.host.SetSize(s, provisional)
		}
		data := b.source.ItemData(index)
		bt.registry.Store(s.ID(), index, data)
		b.renderer.UpdateSurface(s, index, data)
		b.record(PhaseContent, index)
	}

	surfaces := make([]Surface, 0, len(measure))
	for _, index := range measure {
		if s, ok := bt.active[index]; ok {
			surfaces = append(surfaces, s)
		}
	}
	if len(surfaces) > 0 {
		bt.host.Relayout(surfaces)
		b.record(PhaseRelayout, -1)
	}

	sizes := make([]Size, len(measure))
	for i, index := range measure {
		s, ok := bt.active[index]
		if !ok {
			continue
		}
		sizes[i] = bt.host.BestSize(s, bt.orient, b.cross)
		b.record(PhaseMeasure, index)
	}

	for i, index := range measure {
		if _, ok := bt.active[index]; !ok {
			continue
		}
		// A surface without extent would never advance a range scan. It keeps the estimate.
		if sizes[i].along(bt.orient) <= 0 {
			bt.log.V(2).Info("surface measured without extent", "index", index, "size", sizes[i])
			b.observed.Insert(index)
			continue
		}
		entry := bt.cache.Observe(index, sizes[i], b.cross)
		b.observed.Insert(index)
		b.record(PhaseCommit, index)
		bt.log.V(5).Info("measured", "index", index, "size", sizes[i], "state", entry.State)
	}
}

// commit positions and reveals the placed items and reclaims every other active panel.
func (bt *batcher) commit(b *Batch) {
	keep := set.New[int]()
	for _, item := range b.place {
		s, ok := bt.active[item.Index]
		if !ok {
			continue
		}
		keep.Insert(item.Index)
		bt.host.SetSize(s, sizeOf(bt.orient, item.Extent, b.cross))
		bt.host.Move(s, pointOf(bt.orient, item.Start-b.offset, 0))
		bt.host.Show(s)
		b.record(PhasePlace, item.Index)
	}

	indices := maps.Keys(bt.active)
	slices.Sort(indices)
	for _, index := range indices {
		if keep.Has(index) {
			continue
		}
		bt.release(index)
		b.record(PhaseReclaim, index)
	}
	bt.log.V(4).Info("batch applied", "placed", keep.Len(), "ops", len(b.Ops), "pool", bt.pool.Stats())
}

// release hides the panel showing index and hands it back to the pool.
func (bt *batcher) release(index int) {
	s, ok := bt.active[index]
	if !ok {
		return
	}
	bt.host.Hide(s)
	bt.registry.Remove(s.ID())
	bt.pool.Return(s)
	delete(bt.active, index)
}

func (bt *batcher) releaseAll() {
	for _, index := range maps.Keys(bt.active) {
		bt.release(index)
	}
}
