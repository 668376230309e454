package ui

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/util"
	"github.com/getseabird/gallery/widget"
)

// NewHunkWindow shows a single diff hunk with syntax highlighting.
func NewHunkWindow(ctx context.Context, name string, hunk api.DiffHunk) *widget.UniversalWindow {
	w := widget.NewUniversalDialog(ctx, fmt.Sprintf("%s  %s", name, hunk.Title()))

	buf := gtksource.NewBufferWithLanguage(gtksource.LanguageManagerGetDefault().Language("diff"))
	buf.SetText(hunk.Text)
	util.SetSourceColorScheme(buf)

	source := gtksource.NewViewWithBuffer(buf)
	source.SetEditable(false)
	source.SetMonospace(true)
	source.SetShowLineNumbers(true)
	source.SetMarginStart(8)
	source.SetMarginEnd(8)
	source.SetMarginTop(8)
	source.SetMarginBottom(8)
	source.SetVExpand(true)

	scrolledWindow := gtk.NewScrolledWindow()
	scrolledWindow.SetChild(source)
	w.Toolbar.SetContent(scrolledWindow)

	copyButton := gtk.NewButtonFromIconName("edit-copy-symbolic")
	copyButton.SetTooltipText("Copy hunk")
	copyButton.ConnectClicked(func() {
		gdk.DisplayGetDefault().Clipboard().SetText(hunk.Text)
		showToast(ctx, "Hunk copied")
	})
	w.Header.PackStart(copyButton)

	return w
}
