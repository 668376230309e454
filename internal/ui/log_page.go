package ui

import (
	"context"
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
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

const tailInterval = time.Second

// LogPage shows a colored log that keeps growing while it is open.
type LogPage struct {
	*gtk.Box
	*common.State
	ctx    context.Context
	list   *widget.VirtualList
	lines  []api.LogLine
	source *api.LogSource
	follow *gtk.ToggleButton
	stats  *statsBar
	seed   int64
}

type logRow struct {
	*gtk.Box
	level *gtk.Label
	time  *gtk.Label
	text  *gtk.Label
}

func NewLogPage(ctx context.Context, state *common.State) (*LogPage, error) {
	prefs := state.Preferences.Value()
	cfg := prefs.ListConfig()
	cfg.Mode = virtuallist.DynamicSize
	cfg.EstimatedItemSize = 24
	list, err := widget.NewVirtualList(ctx, cfg)
	if err != nil {
		return nil, err
	}

	p := LogPage{
		Box:   gtk.NewBox(gtk.OrientationVertical, 0),
		State: state,
		ctx:   ctx,
		list:  list,
		lines: api.GenerateLog(prefs.Log.Lines, 1, time.Now()),
		stats: newStatsBar(),
		seed:  1,
	}
	p.Append(p.createToolbar(prefs.Log.MinLevel))
	p.Append(list)
	p.Append(p.stats)

	if err := list.SetRenderer(gtkhost.Renderer{Build: p.build, Bind: p.bind}); err != nil {
		return nil, err
	}
	if err := p.setLevel(prefs.Log.MinLevel); err != nil {
		return nil, err
	}

	list.RangeChanged.Sub(ctx, func(items []virtuallist.VisibleItem) {
		p.stats.update(p.list, items)
	})
	list.Activated.Sub(ctx, p.copy)

	go p.tail()

	return &p, nil
}

func (p *LogPage) createToolbar(level api.LogLevel) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationHorizontal, 6)
	box.SetMarginTop(6)
	box.SetMarginBottom(6)
	box.SetMarginStart(12)
	box.SetMarginEnd(12)

	label := gtk.NewLabel("Minimum level")
	label.AddCSSClass("dim-label")
	box.Append(label)

	levels := gtk.NewDropDownFromStrings([]string{"Debug", "Info", "Warning", "Error"})
	levels.SetSelected(uint(level))
	levels.Connect("notify::selected", func() {
		level := api.LogLevel(levels.Selected())
		if err := p.setLevel(level); err != nil {
			widget.ShowErrorDialog(p.ctx, "Could not filter log", err)
			return
		}
		prefs := p.Preferences.Value()
		prefs.Log.MinLevel = level
		p.Preferences.Pub(prefs)
	})
	box.Append(levels)

	spacer := gtk.NewBox(gtk.OrientationHorizontal, 0)
	spacer.SetHExpand(true)
	box.Append(spacer)

	p.follow = gtk.NewToggleButton()
	p.follow.SetIconName("go-bottom-symbolic")
	p.follow.SetTooltipText("Follow new lines")
	p.follow.SetActive(true)
	p.follow.ConnectToggled(func() {
		if p.follow.Active() {
			p.list.ScrollToEnd()
		}
	})
	box.Append(p.follow)

	return box
}

// setLevel rebuilds the source from all lines received so far.
func (p *LogPage) setLevel(level api.LogLevel) error {
	p.source = api.NewLogSource(p.lines, level)
	if err := p.list.SetDataSource(p.source); err != nil {
		return err
	}
	if p.follow.Active() && p.source.Count() > 0 {
		return p.list.ScrollToEnd()
	}
	return nil
}

// tail appends a few lines every tick until the page goes away.
func (p *LogPage) tail() {
	ticker := time.NewTicker(tailInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case now := <-ticker.C:
			glib.IdleAdd(func() {
				if p.ctx.Err() != nil {
					return
				}
				p.seed++
				lines := api.GenerateLog(1+int(p.seed%3), p.seed, now)
				p.lines = append(p.lines, lines...)
				if p.source.Append(lines...) == 0 {
					return
				}
				if err := p.list.Update(); err != nil {
					klog.Errorf("updating log: %v", err)
					return
				}
				if p.follow.Active() {
					p.list.ScrollToEnd()
				}
			})
		}
	}
}

func (p *LogPage) build(panel *gtkhost.Panel) {
	row := logRow{
		Box:   gtk.NewBox(gtk.OrientationHorizontal, 8),
		level: widget.NewStatus("", "", widget.StatusUnknown).Label(),
		time:  gtk.NewLabel(""),
		text:  gtk.NewLabel(""),
	}
	row.AddCSSClass("log-line")

	row.level.SetSizeRequest(56, -1)
	row.Append(row.level)

	row.time.AddCSSClass("dim-label")
	row.time.SetVAlign(gtk.AlignStart)
	row.Append(row.time)

	row.text.SetXAlign(0)
	row.text.SetHExpand(true)
	row.text.SetWrap(true)
	row.text.SetWrapMode(pango.WrapWordChar)
	row.text.SetSelectable(true)
	row.Append(row.text)

	panel.SetChild(&row)
}

func (p *LogPage) bind(panel *gtkhost.Panel, index int, data any) {
	row := panel.Child().(*logRow)
	entry := data.(api.LogEntry)
	widget.LevelStatus(entry.Level).Apply(row.level)
	row.time.SetText(entry.Time.Format("15:04:05"))
	row.time.SetTooltipText(util.HumanizeApproximateDuration(time.Since(entry.Time)) + " ago")
	row.text.SetMarkup(entry.Markup)
}

func (p *LogPage) copy(c virtuallist.PanelContext) {
	entry, ok := c.Data.(api.LogEntry)
	if !ok {
		return
	}
	gdk.DisplayGetDefault().Clipboard().SetText(entry.Text())
	showToast(p.ctx, "Line copied")
}

func (p *LogPage) Refresh() error {
	return p.list.Refresh()
}
