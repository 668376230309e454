// Package gtkhost drives a virtuallist.List with GTK widgets. Panels are boxes placed on a
// gtk.Fixed, which gives the list absolute control over their position and size.
package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/virtuallist"
	"k8s.io/klog/v2"
)

type Canvas struct {
	*gtk.Fixed
	next virtuallist.SurfaceID
}

func NewCanvas() *Canvas {
	c := Canvas{Fixed: gtk.NewFixed()}
	c.SetHExpand(true)
	c.SetVExpand(true)
	return &c
}

// NewPanel puts a hidden, empty panel on the canvas.
func (c *Canvas) NewPanel() *Panel {
	c.next++
	p := newPanel(c.next)
	p.SetVisible(false)
	c.Put(p, 0, 0)
	return p
}

func (c *Canvas) panel(s virtuallist.Surface) *Panel {
	p, ok := s.(*Panel)
	if !ok {
		klog.Fatalf("gtkhost: surface %T does not belong to a canvas", s)
	}
	return p
}

func (c *Canvas) SetSize(s virtuallist.Surface, size virtuallist.Size) {
	c.panel(s).SetSizeRequest(size.Width, size.Height)
}

func (c *Canvas) Size(s virtuallist.Surface) virtuallist.Size {
	p := c.panel(s)
	return virtuallist.Size{Width: p.Width(), Height: p.Height()}
}

func (c *Canvas) Move(s virtuallist.Surface, pos virtuallist.Point) {
	c.Fixed.Move(c.panel(s), float64(pos.X), float64(pos.Y))
}

func (c *Canvas) Position(s virtuallist.Surface) virtuallist.Point {
	x, y := c.ChildPosition(c.panel(s))
	return virtuallist.Point{X: int(x), Y: int(y)}
}

func (c *Canvas) Show(s virtuallist.Surface) {
	c.panel(s).SetVisible(true)
}

func (c *Canvas) Hide(s virtuallist.Surface) {
	c.panel(s).SetVisible(false)
}

// Relayout marks the panels dirty. GTK measures synchronously, so the following BestSize
// calls see the new content without waiting for a frame.
func (c *Canvas) Relayout(surfaces []virtuallist.Surface) {
	for _, s := range surfaces {
		c.panel(s).content.QueueResize()
	}
}

// BestSize measures the content of a panel. It does not depend on the panel being shown
// or on the size last assigned to it.
func (c *Canvas) BestSize(s virtuallist.Surface, o virtuallist.Orientation, cross int) virtuallist.Size {
	p := c.panel(s)
	if o == virtuallist.Horizontal {
		return virtuallist.Size{Width: p.measure(gtk.OrientationHorizontal, cross), Height: cross}
	}
	return virtuallist.Size{Width: cross, Height: p.measure(gtk.OrientationVertical, cross)}
}

func (c *Canvas) Destroy(s virtuallist.Surface) {
	c.Remove(c.panel(s))
}
