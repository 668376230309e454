package ui

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/ctxt"
	"github.com/getseabird/gallery/internal/style"
	"github.com/getseabird/gallery/internal/ui/common"
	"github.com/getseabird/gallery/widget"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

// page is implemented by the views of the stack.
type page interface {
	gtk.Widgetter
	Refresh() error
}

type GalleryWindow struct {
	*widget.UniversalApplicationWindow
	*common.State
	ctx        context.Context
	version    string
	toast      *adw.ToastOverlay
	stack      *adw.ViewStack
	pages      map[string]page
	pageCancel context.CancelFunc
	built      *api.Preferences
}

func NewGalleryWindow(ctx context.Context, app *gtk.Application, state *common.State, version string) *GalleryWindow {
	window := widget.NewUniversalApplicationWindow(app)
	ctx = ctxt.With[*gtk.Window](ctx, &window.Window)
	toast := adw.NewToastOverlay()
	ctx = ctxt.With[*adw.ToastOverlay](ctx, toast)
	ctx, cancel := context.WithCancel(ctx)
	w := GalleryWindow{
		UniversalApplicationWindow: window,
		State:                      state,
		ctx:                        ctx,
		version:                    version,
		toast:                      toast,
		pages:                      map[string]page{},
	}
	w.SetIconName("view-list-symbolic")
	w.SetTitle(ApplicationName)
	w.SetDefaultSize(1000, 700)

	var h glib.SignalHandle
	h = w.ConnectCloseRequest(func() bool {
		prefs := w.Preferences.Value()
		if err := prefs.Save(); err != nil {
			d := widget.ShowErrorDialog(ctx, "Could not save preferences", err)
			d.ConnectUnrealize(func() {
				w.Close()
			})
			w.HandlerDisconnect(h)
			return true
		}
		cancel()
		return false
	})

	toolbar := adw.NewToolbarView()
	header := adw.NewHeaderBar()
	header.SetShowEndTitleButtons(!style.Eq(style.Windows, style.Darwin))
	switcher := adw.NewViewSwitcher()
	switcher.SetPolicy(adw.ViewSwitcherPolicyWide)
	header.SetTitleWidget(switcher)

	menu := gio.NewMenu()
	menu.Append("Refresh", "win.refresh")
	menu.Append("Preferences", "win.prefs")
	menu.Append("About Gallery", "win.about")
	button := gtk.NewMenuButton()
	button.SetIconName("open-menu-symbolic")
	button.SetMenuModel(menu)
	header.PackEnd(button)
	toolbar.AddTopBar(header)

	w.stack = adw.NewViewStack()
	switcher.SetStack(w.stack)
	toolbar.SetContent(w.stack)
	w.toast.SetChild(toolbar)
	w.SetContent(w.toast)

	w.Preferences.Sub(ctx, func(prefs api.Preferences) {
		// The log level filter is changed from within the log page and does not need a rebuild.
		if w.built != nil && w.built.List == prefs.List && w.built.Log.Lines == prefs.Log.Lines {
			return
		}
		w.built = ptr.To(prefs)
		w.createPages()
	})

	w.createActions()
	return &w
}

// createPages builds every page from the current preferences, replacing existing ones.
func (w *GalleryWindow) createPages() {
	visible := w.stack.VisibleChildName()
	if w.pageCancel != nil {
		w.pageCancel()
	}
	for _, p := range w.pages {
		w.stack.Remove(p)
	}
	clear(w.pages)

	var ctx context.Context
	ctx, w.pageCancel = context.WithCancel(w.ctx)

	items, err := NewItemsPage(ctx, w.State)
	if err != nil {
		widget.ShowErrorDialog(w.ctx, "Could not create item list", err)
	} else {
		w.pages["items"] = items
		w.stack.AddTitledWithIcon(items, "items", "Items", "view-list-symbolic")
	}

	logs, err := NewLogPage(ctx, w.State)
	if err != nil {
		widget.ShowErrorDialog(w.ctx, "Could not create log view", err)
	} else {
		w.pages["log"] = logs
		w.stack.AddTitledWithIcon(logs, "log", "Log", "utilities-terminal-symbolic")
	}

	diff, err := NewDiffPage(ctx, w.State)
	if err != nil {
		widget.ShowErrorDialog(w.ctx, "Could not create diff view", err)
	} else {
		w.pages["diff"] = diff
		w.stack.AddTitledWithIcon(diff, "diff", "Diff", "document-edit-symbolic")
	}

	if _, ok := w.pages[visible]; ok {
		w.stack.SetVisibleChildName(visible)
	}
	klog.V(2).Infof("created %d pages", len(w.pages))
}

func (w *GalleryWindow) createActions() {
	refresh := gio.NewSimpleAction("refresh", nil)
	refresh.ConnectActivate(func(_ *glib.Variant) {
		p, ok := w.pages[w.stack.VisibleChildName()]
		if !ok {
			return
		}
		if err := p.Refresh(); err != nil {
			widget.ShowErrorDialog(w.ctx, "Could not refresh", err)
		}
	})
	w.AddAction(refresh)
	w.Application().SetAccelsForAction("win.refresh", []string{"<Ctrl>R", "F5"})

	action := gio.NewSimpleAction("prefs", nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		prefs := NewPreferencesWindow(w.State)
		prefs.SetTransientFor(&w.Window)
		prefs.Present()
	})
	w.AddAction(action)
	w.Application().SetAccelsForAction("win.prefs", []string{"<Ctrl>comma"})

	action = gio.NewSimpleAction("about", nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		NewAboutWindow(&w.Window, w.version).Present()
	})
	w.AddAction(action)
}

// showToast shows msg in the toast overlay of the window stored in ctx.
func showToast(ctx context.Context, msg string) {
	if overlay, ok := ctxt.From[*adw.ToastOverlay](ctx); ok {
		overlay.AddToast(adw.NewToast(msg))
	}
}
