package virtuallist

import (
	"fmt"
	"testing"

	"github.com/go-logr/logr/testr"
)

type fakeSurface struct {
	id        SurfaceID
	index     int
	data      any
	visible   bool
	size      Size
	pos       Point
	destroyed bool
	updates   int
}

func (s *fakeSurface) ID() SurfaceID { return s.id }

// fakeHost records every primitive call. Item extents come from extent, keyed by the
// index last pushed into a surface and the cross extent it is measured at.
type fakeHost struct {
	next     SurfaceID
	surfaces map[SurfaceID]*fakeSurface
	calls    []string
	extent   func(index, cross int) int
}

func newFakeHost(extent func(index, cross int) int) *fakeHost {
	return &fakeHost{surfaces: map[SurfaceID]*fakeSurface{}, extent: extent}
}

func constExtent(n int) func(int, int) int {
	return func(int, int) int { return n }
}

func (h *fakeHost) create() *fakeSurface {
	h.next++
	s := &fakeSurface{id: h.next, index: -1}
	h.surfaces[s.id] = s
	h.calls = append(h.calls, "create")
	return s
}

func (h *fakeHost) get(s Surface) *fakeSurface { return s.(*fakeSurface) }

func (h *fakeHost) SetSize(s Surface, size Size) {
	h.get(s).size = size
	h.calls = append(h.calls, "size")
}

func (h *fakeHost) Size(s Surface) Size { return h.get(s).size }

func (h *fakeHost) Move(s Surface, p Point) {
	h.get(s).pos = p
	h.calls = append(h.calls, "move")
}

func (h *fakeHost) Position(s Surface) Point { return h.get(s).pos }

func (h *fakeHost) Show(s Surface) {
	h.get(s).visible = true
	h.calls = append(h.calls, "show")
}

func (h *fakeHost) Hide(s Surface) {
	h.get(s).visible = false
	h.calls = append(h.calls, "hide")
}

func (h *fakeHost) Relayout(surfaces []Surface) {
	h.calls = append(h.calls, fmt.Sprintf("relayout:%d", len(surfaces)))
}

func (h *fakeHost) BestSize(s Surface, o Orientation, cross int) Size {
	h.calls = append(h.calls, "measure")
	return sizeOf(o, h.extent(h.get(s).index, cross), cross)
}

func (h *fakeHost) Destroy(s Surface) {
	h.get(s).destroyed = true
	delete(h.surfaces, s.ID())
	h.calls = append(h.calls, "destroy")
}

func (h *fakeHost) visibleSurfaces() []*fakeSurface {
	var out []*fakeSurface
	for _, s := range h.surfaces {
		if s.visible {
			out = append(out, s)
		}
	}
	return out
}

func (h *fakeHost) reset() {
	h.calls = nil
}

type fakeRenderer struct{}

func (fakeRenderer) CreateSurface(parent Host) Surface {
	return parent.(*fakeHost).create()
}

func (fakeRenderer) UpdateSurface(s Surface, index int, data any) {
	fs := s.(*fakeSurface)
	fs.index = index
	fs.data = data
	fs.updates++
}

type fakeSource struct {
	n     int
	calls int
}

func (s *fakeSource) Count() int { return s.n }

func (s *fakeSource) ItemData(index int) any {
	s.calls++
	return fmt.Sprintf("item %d", index)
}

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.EstimatedItemSize = 50
	cfg.Logger = testr.New(t)
	return cfg
}

func newTestList(t *testing.T, cfg Config, host *fakeHost, n int) (*List, *fakeSource) {
	t.Helper()
	l, err := New(host, cfg)
	if err != nil {
		t.Fatal(err)
	}
	source := &fakeSource{n: n}
	if err := l.SetDataSource(source); err != nil {
		t.Fatal(err)
	}
	if err := l.SetRenderer(fakeRenderer{}); err != nil {
		t.Fatal(err)
	}
	return l, source
}
