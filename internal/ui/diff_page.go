package ui

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/gtkhost"
	"github.com/getseabird/gallery/internal/ui/common"
	"github.com/getseabird/gallery/internal/util"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/getseabird/gallery/widget"
	"github.com/hexops/gotextdiff"
)

const (
	diffName = "gallery.txt"
	// previewLines is how many lines of a hunk its panel shows.
	previewLines = 12
)

// DiffPage lists the hunks of a generated revision of a document.
type DiffPage struct {
	*gtk.Box
	*common.State
	ctx    context.Context
	list   *widget.VirtualList
	source *api.DiffSource
	stats  *statsBar
}

type hunkRow struct {
	*gtk.Box
	title   *gtk.Label
	added   *gtk.Label
	removed *gtk.Label
	preview *gtk.Label
}

func NewDiffPage(ctx context.Context, state *common.State) (*DiffPage, error) {
	prefs := state.Preferences.Value()
	cfg := prefs.ListConfig()
	cfg.Mode = virtuallist.FixedSize
	cfg.EstimatedItemSize = 120
	list, err := widget.NewVirtualList(ctx, cfg)
	if err != nil {
		return nil, err
	}

	before, after := api.GenerateRevision(prefs.List.ItemCount, 1)
	p := DiffPage{
		Box:    gtk.NewBox(gtk.OrientationVertical, 0),
		State:  state,
		ctx:    ctx,
		list:   list,
		source: api.NewDiffSource(diffName, before, after),
		stats:  newStatsBar(),
	}

	added, removed := p.source.Stat()
	summary := gtk.NewLabel("")
	summary.SetMarkup(fmt.Sprintf("<b>%s</b>  %s hunks, <span foreground=\"#26a269\">+%s</span> <span foreground=\"#c01c28\">-%s</span>",
		html.EscapeString(p.source.Name()),
		util.HumanizeCount(p.source.Count()), util.HumanizeCount(added), util.HumanizeCount(removed)))
	summary.SetXAlign(0)
	summary.SetMarginTop(6)
	summary.SetMarginBottom(6)
	summary.SetMarginStart(12)
	p.Append(summary)
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

func (p *DiffPage) build(panel *gtkhost.Panel) {
	row := hunkRow{
		Box:     gtk.NewBox(gtk.OrientationVertical, 4),
		title:   gtk.NewLabel(""),
		added:   gtk.NewLabel(""),
		removed: gtk.NewLabel(""),
		preview: gtk.NewLabel(""),
	}

	header := gtk.NewBox(gtk.OrientationHorizontal, 6)
	row.title.AddCSSClass("title")
	row.title.AddCSSClass("monospace")
	row.title.SetXAlign(0)
	row.title.SetHExpand(true)
	header.Append(row.title)

	row.added.AddCSSClass("success")
	header.Append(row.added)
	row.removed.AddCSSClass("error")
	header.Append(row.removed)

	open := gtk.NewButtonFromIconName("document-open-symbolic")
	open.AddCSSClass("flat")
	open.SetTooltipText("Open hunk")
	open.ConnectClicked(func() {
		c, err := p.list.Context(panel)
		if err != nil {
			widget.ShowErrorDialog(p.ctx, "Hunk is no longer shown", err)
			return
		}
		p.open(c)
	})
	header.Append(open)
	row.Append(header)

	row.preview.AddCSSClass("monospace")
	row.preview.SetXAlign(0)
	row.preview.SetYAlign(0)
	row.preview.SetEllipsize(pango.EllipsizeEnd)
	row.preview.SetLines(previewLines)
	row.Append(row.preview)

	panel.SetChild(&row)
}

func (p *DiffPage) bind(panel *gtkhost.Panel, index int, data any) {
	row := panel.Child().(*hunkRow)
	hunk := data.(api.DiffHunk)
	row.title.SetText(hunk.Title())
	row.added.SetText(fmt.Sprintf("+%d", hunk.Added))
	row.removed.SetText(fmt.Sprintf("-%d", hunk.Removed))
	row.preview.SetMarkup(previewMarkup(hunk))
}

// previewMarkup colors the first lines of a hunk.
func previewMarkup(hunk api.DiffHunk) string {
	var b strings.Builder
	for i, line := range hunk.Lines {
		if i == previewLines {
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		content := html.EscapeString(strings.TrimSuffix(line.Content, "\n"))
		switch line.Kind {
		case gotextdiff.Insert:
			fmt.Fprintf(&b, `<span foreground="#26a269">+%s</span>`, content)
		case gotextdiff.Delete:
			fmt.Fprintf(&b, `<span foreground="#c01c28">-%s</span>`, content)
		default:
			b.WriteString(" " + content)
		}
	}
	return b.String()
}

func (p *DiffPage) open(c virtuallist.PanelContext) {
	hunk, ok := c.Data.(api.DiffHunk)
	if !ok {
		return
	}
	NewHunkWindow(p.ctx, p.source.Name(), hunk).Present()
}

func (p *DiffPage) Refresh() error {
	return p.list.Refresh()
}
