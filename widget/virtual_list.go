package widget

import (
	"context"
	"errors"
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/gtkhost"
	"github.com/getseabird/gallery/internal/pubsub"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/zmwangx/debounce"
	"k8s.io/klog/v2"
)

const scrollStep = 48

// VirtualList shows a virtuallist.List on a clipped canvas next to a scrollbar.
type VirtualList struct {
	*gtk.Box
	ctx        context.Context
	list       *virtuallist.List
	canvas     *gtkhost.Canvas
	source     virtuallist.DataSource
	orient     virtuallist.Orientation
	adjustment *gtk.Adjustment
	syncing    bool
	pending    virtuallist.Size
	resize     func()
	cancel     func()

	// Activated fires when an item is clicked or activated with the keyboard.
	Activated    pubsub.Topic[virtuallist.PanelContext]
	RangeChanged pubsub.Topic[[]virtuallist.VisibleItem]
}

func NewVirtualList(ctx context.Context, cfg virtuallist.Config) (*VirtualList, error) {
	canvas := gtkhost.NewCanvas()
	list, err := virtuallist.New(canvas, cfg)
	if err != nil {
		return nil, err
	}

	v := VirtualList{
		ctx:          ctx,
		list:         list,
		canvas:       canvas,
		orient:       cfg.Orientation,
		adjustment:   gtk.NewAdjustment(0, 0, 0, scrollStep, 0, 0),
		Activated:    pubsub.NewTopic[virtuallist.PanelContext](),
		RangeChanged: pubsub.NewTopic[[]virtuallist.VisibleItem](),
	}

	boxOrient, barOrient := gtk.OrientationHorizontal, gtk.OrientationVertical
	if cfg.Orientation == virtuallist.Horizontal {
		boxOrient, barOrient = gtk.OrientationVertical, gtk.OrientationHorizontal
	}
	v.Box = gtk.NewBox(boxOrient, 0)
	v.AddCSSClass("virtual-list")
	v.SetFocusable(true)

	// The drawing area only reports the allocated viewport; panels live on the canvas above it.
	area := gtk.NewDrawingArea()
	area.SetHExpand(true)
	area.SetVExpand(true)

	overlay := gtk.NewOverlay()
	overlay.SetChild(area)
	overlay.AddOverlay(canvas)
	overlay.SetOverflow(gtk.OverflowHidden)
	overlay.SetHExpand(true)
	overlay.SetVExpand(true)
	v.Append(overlay)
	v.Append(gtk.NewScrollbar(barOrient, v.adjustment))

	v.resize, v.cancel = v.debouncedResize()
	area.ConnectResize(func(width, height int) {
		v.pending = virtuallist.Size{Width: width, Height: height}
		v.resize()
	})

	v.adjustment.ConnectValueChanged(func() {
		if v.syncing {
			return
		}
		v.apply(v.list.ScrollTo(int(v.adjustment.Value())))
	})

	scroll := gtk.NewEventControllerScroll(gtk.EventControllerScrollBothAxes)
	scroll.ConnectScroll(func(dx, dy float64) bool {
		delta := dy
		if v.orient == virtuallist.Horizontal && dx != 0 {
			delta = dx
		}
		v.apply(v.list.ScrollBy(int(delta * scrollStep)))
		return true
	})
	overlay.AddController(scroll)

	click := gtk.NewGestureClick()
	click.ConnectPressed(func(n int, x, y float64) {
		v.GrabFocus()
		if n == 2 {
			v.activateAt(virtuallist.Point{X: int(x), Y: int(y)})
		}
	})
	overlay.AddController(click)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(v.keyPressed)
	v.AddController(keys)

	v.ConnectDestroy(func() {
		v.cancel()
		v.list.Destroy()
	})

	return &v, nil
}

// debouncedResize coalesces the allocation changes of an interactive window resize. The
// debounce timer fires off the main loop, so the resize hops back before touching the list.
func (v *VirtualList) debouncedResize() (func(), func()) {
	resize, control := debounce.Debounce(func() {
		glib.IdleAdd(func() {
			size := v.pending
			if size == v.list.Viewport() {
				return
			}
			klog.V(3).Infof("virtual list resized to %dx%d", size.Width, size.Height)
			v.apply(v.list.Resize(size))
		})
	}, 16*time.Millisecond, debounce.WithMaxWait(100*time.Millisecond))
	return resize, control.Cancel
}

func (v *VirtualList) keyPressed(keyval, keycode uint, state gdk.ModifierType) bool {
	view := v.list.Viewport().Height
	if v.orient == virtuallist.Horizontal {
		view = v.list.Viewport().Width
	}
	switch keyval {
	case gdk.KEY_Up, gdk.KEY_Left:
		v.apply(v.list.ScrollBy(-scrollStep))
	case gdk.KEY_Down, gdk.KEY_Right:
		v.apply(v.list.ScrollBy(scrollStep))
	case gdk.KEY_Page_Up:
		v.apply(v.list.ScrollBy(-view))
	case gdk.KEY_Page_Down:
		v.apply(v.list.ScrollBy(view))
	case gdk.KEY_Home:
		v.apply(v.list.ScrollTo(0))
	case gdk.KEY_End:
		v.apply(v.list.ScrollToEnd())
	case gdk.KEY_Return, gdk.KEY_KP_Enter:
		if items := v.list.VisibleRange(); len(items) > 0 {
			v.publish(items[0].Index)
		}
	default:
		return false
	}
	return true
}

func (v *VirtualList) activateAt(p virtuallist.Point) {
	index, err := v.list.HitTest(p)
	if err != nil {
		if !errors.Is(err, virtuallist.ErrNoItem) {
			klog.Warningf("hit test at %d,%d: %v", p.X, p.Y, err)
		}
		return
	}
	v.publish(index)
}

func (v *VirtualList) publish(index int) {
	if v.source == nil {
		return
	}
	v.Activated.Pub(virtuallist.PanelContext{Index: index, Data: v.source.ItemData(index)})
}

// apply logs failed list operations and mirrors the list state into the scrollbar.
func (v *VirtualList) apply(err error) {
	if err != nil {
		if errors.Is(err, virtuallist.ErrNoDataSource) || errors.Is(err, virtuallist.ErrNoRenderer) {
			return
		}
		klog.Errorf("virtual list: %v", err)
		return
	}

	view := v.list.Viewport().Height
	if v.orient == virtuallist.Horizontal {
		view = v.list.Viewport().Width
	}
	v.syncing = true
	v.adjustment.Configure(
		float64(v.list.Offset()),
		0,
		float64(max(v.list.ContentExtent(), view)),
		scrollStep,
		float64(view),
		float64(view),
	)
	v.syncing = false
	v.RangeChanged.Pub(v.list.VisibleRange())
}

func (v *VirtualList) List() *virtuallist.List {
	return v.list
}

func (v *VirtualList) SetDataSource(source virtuallist.DataSource) error {
	v.source = source
	err := v.list.SetDataSource(source)
	v.apply(err)
	return err
}

func (v *VirtualList) SetRenderer(renderer gtkhost.Renderer) error {
	err := v.list.SetRenderer(renderer)
	v.apply(err)
	return err
}

func (v *VirtualList) SetSizingMode(mode virtuallist.SizingMode) error {
	err := v.list.SetSizingMode(mode)
	v.apply(err)
	return err
}

// Update picks up items appended to the current data source.
func (v *VirtualList) Update() error {
	err := v.list.Update()
	v.apply(err)
	return err
}

// Count is the number of items of the current data source.
func (v *VirtualList) Count() int {
	if v.source == nil {
		return 0
	}
	return v.source.Count()
}

func (v *VirtualList) ScrollToItem(index int) error {
	err := v.list.ScrollToItem(index)
	v.apply(err)
	return err
}

func (v *VirtualList) ScrollToEnd() error {
	err := v.list.ScrollToEnd()
	v.apply(err)
	return err
}

func (v *VirtualList) Refresh() error {
	err := v.list.Refresh()
	v.apply(err)
	return err
}

// Context resolves the item a panel shows right now. Handlers inside a panel call it when
// they fire instead of capturing the index they were bound with.
func (v *VirtualList) Context(p *gtkhost.Panel) (virtuallist.PanelContext, error) {
	return v.list.Context(p.ID())
}
