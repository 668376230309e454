package ui

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/gtkhost"
	"github.com/getseabird/gallery/internal/ui/common"
	"github.com/getseabird/gallery/internal/util"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/getseabird/gallery/widget"
	"k8s.io/klog/v2"
)

// ItemsPage lists generated items of very different heights.
type ItemsPage struct {
	*gtk.Box
	*common.State
	ctx    context.Context
	list   *widget.VirtualList
	source *api.GeneratedSource
	filter *api.FilterSource
	jump   *gtk.SpinButton
	stats  *statsBar
}

type itemRow struct {
	*gtk.Box
	title  *gtk.Label
	id     *gtk.Label
	body   *gtk.Label
	status *gtk.Image
}

func NewItemsPage(ctx context.Context, state *common.State) (*ItemsPage, error) {
	prefs := state.Preferences.Value()
	list, err := widget.NewVirtualList(ctx, prefs.ListConfig())
	if err != nil {
		return nil, err
	}

	p := ItemsPage{
		Box:    gtk.NewBox(gtk.OrientationVertical, 0),
		State:  state,
		ctx:    ctx,
		list:   list,
		source: api.NewGeneratedSource(prefs.List.ItemCount),
		stats:  newStatsBar(),
	}
	p.Append(p.createToolbar(prefs.List.FixedSize))
	p.Append(list)
	p.Append(p.stats)

	if err := list.SetRenderer(gtkhost.Renderer{Build: p.build, Bind: p.bind}); err != nil {
		return nil, err
	}
	if err := list.SetDataSource(p.source); err != nil {
		return nil, err
	}

	list.RangeChanged.Sub(ctx, func(items []virtuallist.VisibleItem) {
		p.stats.update(p.list, items)
	})
	list.Activated.Sub(ctx, p.open)

	return &p, nil
}

func (p *ItemsPage) createToolbar(fixed bool) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationHorizontal, 6)
	box.SetMarginTop(6)
	box.SetMarginBottom(6)
	box.SetMarginStart(12)
	box.SetMarginEnd(12)

	box.Append(NewSearchBar("Search items", p.search))

	mode := gtk.NewToggleButtonWithLabel("Fixed size")
	mode.SetActive(fixed)
	mode.SetTooltipText("Items keep their height when the window is resized")
	mode.ConnectToggled(func() {
		m := virtuallist.DynamicSize
		if mode.Active() {
			m = virtuallist.FixedSize
		}
		if err := p.list.SetSizingMode(m); err != nil {
			widget.ShowErrorDialog(p.ctx, "Could not change sizing mode", err)
			return
		}
		// panels reflow their body label for the new mode
		if err := p.list.Refresh(); err != nil {
			klog.Errorf("refreshing items: %v", err)
		}
	})
	box.Append(mode)

	p.jump = gtk.NewSpinButtonWithRange(0, float64(max(p.source.Count()-1, 0)), 1)
	p.jump.SetTooltipText("Item to scroll to")
	box.Append(p.jump)

	goTo := gtk.NewButtonWithLabel("Go")
	goTo.ConnectClicked(p.scrollToJump)
	box.Append(goTo)

	top := gtk.NewButtonFromIconName("go-top-symbolic")
	top.SetTooltipText("First item")
	top.ConnectClicked(func() {
		if p.list.Count() > 0 {
			p.list.ScrollToItem(0)
		}
	})
	box.Append(top)

	bottom := gtk.NewButtonFromIconName("go-bottom-symbolic")
	bottom.SetTooltipText("Last item")
	bottom.ConnectClicked(func() {
		if err := p.list.ScrollToEnd(); err != nil {
			widget.ShowErrorDialog(p.ctx, "Could not scroll to the end", err)
		}
	})
	box.Append(bottom)

	return box
}

func (p *ItemsPage) scrollToJump() {
	if err := p.list.ScrollToItem(p.jump.ValueAsInt()); err != nil {
		widget.ShowErrorDialog(p.ctx, "Could not scroll to item", err)
	}
}

func (p *ItemsPage) search(query string) {
	var source virtuallist.DataSource = p.source
	p.filter = nil
	if query != "" {
		p.filter = api.NewFilterSource(p.source, query)
		source = p.filter
		showToast(p.ctx, fmt.Sprintf("%s items match %q", util.HumanizeCount(p.filter.Count()), p.filter.Query()))
	}
	if err := p.list.SetDataSource(source); err != nil {
		widget.ShowErrorDialog(p.ctx, "Could not filter items", err)
		return
	}
	p.jump.SetRange(0, float64(max(source.Count()-1, 0)))
}

func (p *ItemsPage) build(panel *gtkhost.Panel) {
	row := itemRow{
		Box:    gtk.NewBox(gtk.OrientationVertical, 4),
		title:  gtk.NewLabel(""),
		id:     gtk.NewLabel(""),
		body:   gtk.NewLabel(""),
		status: widget.NewStatusIcon(false),
	}

	header := gtk.NewBox(gtk.OrientationHorizontal, 6)
	row.title.AddCSSClass("title")
	row.title.SetXAlign(0)
	header.Append(row.title)
	header.Append(row.status)

	row.id.AddCSSClass("dim-label")
	row.id.AddCSSClass("caption")
	row.id.SetHExpand(true)
	row.id.SetXAlign(1)
	header.Append(row.id)

	open := gtk.NewButtonFromIconName("document-open-symbolic")
	open.AddCSSClass("flat")
	open.SetTooltipText("Open")
	open.ConnectClicked(func() {
		c, err := p.list.Context(panel)
		if err != nil {
			widget.ShowErrorDialog(p.ctx, "Item is no longer shown", err)
			return
		}
		p.open(c)
	})
	header.Append(open)
	row.Append(header)

	row.body.AddCSSClass("body")
	row.body.SetXAlign(0)
	row.Append(row.body)

	panel.SetChild(&row)
}

func (p *ItemsPage) bind(panel *gtkhost.Panel, index int, data any) {
	row := panel.Child().(*itemRow)
	item := data.(api.Item)
	row.title.SetText(item.Title)
	row.id.SetText(item.ID.String()[:8])
	row.id.SetTooltipText(item.ID.String())
	row.body.SetText(item.Body)

	if p.list.List().SizingMode() == virtuallist.FixedSize {
		row.body.SetWrap(false)
		row.body.SetEllipsize(pango.EllipsizeEnd)
	} else {
		row.body.SetEllipsize(pango.EllipsizeNone)
		row.body.SetWrap(true)
		row.body.SetWrapMode(pango.WrapWordChar)
	}

	state, ok := p.list.List().Measurement(index)
	widget.SetStatusIcon(row.status, ok && isVerified(state))
}

func (p *ItemsPage) open(c virtuallist.PanelContext) {
	item, ok := c.Data.(api.Item)
	if !ok {
		return
	}
	index := c.Index
	if p.filter != nil {
		index = p.filter.SourceIndex(c.Index)
	}

	dialog := widget.NewUniversalDialog(p.ctx, item.Title)
	dialog.SetDefaultSize(480, 360)

	body := gtk.NewLabel(item.Body)
	body.SetWrap(true)
	body.SetWrapMode(pango.WrapWordChar)
	body.SetXAlign(0)
	body.SetVAlign(gtk.AlignStart)
	body.SetSelectable(true)
	body.SetMarginStart(12)
	body.SetMarginEnd(12)
	body.SetMarginTop(12)
	body.SetMarginBottom(12)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetChild(body)
	scrolled.SetVExpand(true)
	dialog.Toolbar.SetContent(scrolled)

	subtitle := gtk.NewLabel(fmt.Sprintf("#%d  %s", index, item.ID))
	subtitle.AddCSSClass("dim-label")
	dialog.Toolbar.AddBottomBar(subtitle)
	dialog.Present()
}

func (p *ItemsPage) Refresh() error {
	return p.list.Refresh()
}
