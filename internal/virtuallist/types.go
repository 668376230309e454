// Package virtuallist renders a window over a large, variably sized item sequence by
// recycling a small pool of host surfaces. It knows nothing about the widget toolkit; the
// toolkit is reached through the Host interface and items are produced by a DataSource
// and a Renderer.
//
// A List is owned by the UI thread. None of its methods are safe for concurrent use.
package virtuallist

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// SizingMode declares whether item extents depend on the cross-axis extent of the viewport.
type SizingMode int

const (
	// DynamicSize items reflow with the viewport, e.g. wrapped text.
	DynamicSize SizingMode = iota
	// FixedSize items keep their extent regardless of the viewport.
	FixedSize
)

func (m SizingMode) String() string {
	if m == FixedSize {
		return "fixed"
	}
	return "dynamic"
}

type Size struct {
	Width, Height int
}

type Point struct {
	X, Y int
}

// along returns the component of s on the scroll axis.
func (s Size) along(o Orientation) int {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// across returns the component of s on the cross axis.
func (s Size) across(o Orientation) int {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

func sizeOf(o Orientation, along, across int) Size {
	if o == Horizontal {
		return Size{Width: along, Height: across}
	}
	return Size{Width: across, Height: along}
}

func (p Point) along(o Orientation) int {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

func pointOf(o Orientation, along, across int) Point {
	if o == Horizontal {
		return Point{X: along, Y: across}
	}
	return Point{X: across, Y: along}
}

// SurfaceID is the stable identity of a host surface.
type SurfaceID uint64

// Surface is an opaque host-owned container representing one on-screen item slot.
type Surface interface {
	ID() SurfaceID
}

// Host provides the toolkit primitives the list drives.
type Host interface {
	SetSize(s Surface, size Size)
	Size(s Surface) Size
	Move(s Surface, p Point)
	Position(s Surface) Point
	Show(s Surface)
	Hide(s Surface)
	// Relayout processes pending content and size changes of all given surfaces at once.
	Relayout(surfaces []Surface)
	// BestSize returns the toolkit computed size of s constrained to crossExtent on the
	// cross axis. Surfaces are measured while hidden and after SetSize, neither may
	// affect the result.
	BestSize(s Surface, o Orientation, crossExtent int) Size
	Destroy(s Surface)
}

// DataSource supplies item payloads by index. ItemData may be called any number of times.
type DataSource interface {
	Count() int
	ItemData(index int) any
}

// Renderer creates surfaces and pushes item content into them.
type Renderer interface {
	CreateSurface(parent Host) Surface
	UpdateSurface(s Surface, index int, data any)
}

// VisibleItem is one committed entry of a visible range.
type VisibleItem struct {
	Index  int
	Start  int
	Extent int
}

// End is the exclusive end offset of the item along the scroll axis.
func (v VisibleItem) End() int {
	return v.Start + v.Extent
}

// PanelContext is what a surface currently represents.
type PanelContext struct {
	Index int
	Data  any
}

type PoolStats struct {
	Idle   int
	Active int
	Total  int
}

type CacheStats struct {
	Len        int
	Capacity   int
	Generation uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
}

// ScrollbarState describes the scrollbar thumb. Position and Thumb are ratios in [0,1].
type ScrollbarState struct {
	Position float64
	Thumb    float64
	Max      int
}
