package widget

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/ctxt"
	"github.com/getseabird/gallery/internal/style"
)

// Adwaita makes client side decorations mandatory, which causes some problems on the Windows platform
// See e.g. https://gitlab.gnome.org/GNOME/gtk/-/issues/3749
// These wrappers use the plain GTK windows on Windows and the Adwaita ones everywhere else.

type UniversalApplicationWindow struct {
	*gtk.ApplicationWindow
	AdwWindow *adw.ApplicationWindow
}

func NewUniversalApplicationWindow(app *gtk.Application) *UniversalApplicationWindow {
	if style.Eq(style.Windows) {
		w := gtk.NewApplicationWindow(app)
		w.SetDecorated(true)
		return &UniversalApplicationWindow{ApplicationWindow: w}
	}
	w := adw.NewApplicationWindow(app)
	return &UniversalApplicationWindow{ApplicationWindow: &w.ApplicationWindow, AdwWindow: w}
}

func (w *UniversalApplicationWindow) SetContent(content gtk.Widgetter) {
	if w.AdwWindow != nil {
		w.AdwWindow.SetContent(content)
	} else {
		w.SetChild(content)
	}
}

type UniversalWindow struct {
	*gtk.Window
	AdwWindow *adw.Window
	Toolbar   *adw.ToolbarView
	Header    *adw.HeaderBar
}

// NewUniversalDialog creates a modal window on top of the window stored in ctx, with a
// header bar and an empty toolbar view as content.
func NewUniversalDialog(ctx context.Context, title string) *UniversalWindow {
	var w UniversalWindow
	if style.Eq(style.Windows) {
		w.Window = gtk.NewWindow()
		w.SetDecorated(true)
	} else {
		w.AdwWindow = adw.NewWindow()
		w.Window = &w.AdwWindow.Window
	}
	if parent, ok := ctxt.From[*gtk.Window](ctx); ok {
		w.SetTransientFor(parent)
	}
	w.SetModal(true)
	w.SetTitle(title)
	w.SetDefaultSize(800, 600)

	w.Toolbar = adw.NewToolbarView()
	w.Header = adw.NewHeaderBar()
	w.Header.SetShowEndTitleButtons(!style.Eq(style.Windows, style.Darwin))
	w.Toolbar.AddTopBar(w.Header)
	w.SetContent(w.Toolbar)
	return &w
}

func (w *UniversalWindow) SetContent(content gtk.Widgetter) {
	if w.AdwWindow != nil {
		w.AdwWindow.SetContent(content)
	} else {
		w.SetChild(content)
	}
}
