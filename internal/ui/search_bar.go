package ui

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/zmwangx/debounce"
)

type SearchBar struct {
	*gtk.SearchEntry
}

// NewSearchBar calls changed with the entry text once typing pauses. Enter applies the
// query right away.
func NewSearchBar(placeholder string, changed func(query string)) *SearchBar {
	entry := gtk.NewSearchEntry()
	entry.SetPlaceholderText(placeholder)
	entry.SetHExpand(true)

	search, control := debounce.Debounce(func() {
		glib.IdleAdd(func() {
			changed(entry.Text())
		})
	}, 300*time.Millisecond, debounce.WithMaxWait(time.Second))
	entry.ConnectSearchChanged(search)
	entry.ConnectActivate(control.Flush)
	entry.ConnectDestroy(control.Cancel)

	return &SearchBar{entry}
}
