package gtkhost

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/virtuallist"
)

// Panel is one recycled item slot. Its content widget is built once and refilled for
// whatever item the panel currently shows.
//
// The slot carries visibility and the size assigned by the list. The styled content box
// inside it stays visible and unconstrained, so it can be measured while the slot is
// hidden.
type Panel struct {
	*gtk.Box
	id      virtuallist.SurfaceID
	content *gtk.Box
	child   gtk.Widgetter
}

func newPanel(id virtuallist.SurfaceID) *Panel {
	p := Panel{Box: gtk.NewBox(gtk.OrientationVertical, 0), id: id}
	p.SetName(fmt.Sprintf("panel-%d", id))
	p.SetOverflow(gtk.OverflowHidden)

	p.content = gtk.NewBox(gtk.OrientationVertical, 0)
	p.content.AddCSSClass("virtual-panel")
	p.content.SetVExpand(true)
	p.Append(p.content)
	return &p
}

func (p *Panel) ID() virtuallist.SurfaceID {
	return p.id
}

func (p *Panel) SetChild(child gtk.Widgetter) {
	if p.child != nil {
		p.content.Remove(p.child)
	}
	p.child = child
	if child != nil {
		gtk.BaseWidget(child).SetVExpand(true)
		p.content.Append(child)
	}
}

func (p *Panel) Child() gtk.Widgetter {
	return p.child
}

// measure returns the natural extent of the content along o for the given cross extent.
// GTK reports zero for hidden widgets and never less than a size request, so the slot
// itself is not measured.
func (p *Panel) measure(o gtk.Orientation, cross int) int {
	_, natural, _, _ := p.content.Measure(o, cross)
	return natural
}

// Renderer adapts two callbacks to virtuallist.Renderer. Build runs once per panel and
// Bind every time the panel is assigned an item.
type Renderer struct {
	Build func(p *Panel)
	Bind  func(p *Panel, index int, data any)
}

func (r Renderer) CreateSurface(parent virtuallist.Host) virtuallist.Surface {
	p := parent.(*Canvas).NewPanel()
	if r.Build != nil {
		r.Build(p)
	}
	return p
}

func (r Renderer) UpdateSurface(s virtuallist.Surface, index int, data any) {
	if r.Bind != nil {
		r.Bind(s.(*Panel), index, data)
	}
}
