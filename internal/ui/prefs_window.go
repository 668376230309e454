package ui

import (
	"slices"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/ui/common"
	"github.com/zmwangx/debounce"
)

// colorSchemes are the choices of the color scheme row, in order.
var colorSchemes = []int{api.ColorSchemeDefault, api.ColorSchemeForceLight, api.ColorSchemeForceDark}

type PrefsWindow struct {
	*adw.PreferencesWindow
	*common.State
	prefs   api.Preferences
	publish func()
}

func NewPreferencesWindow(state *common.State) *PrefsWindow {
	w := PrefsWindow{PreferencesWindow: adw.NewPreferencesWindow(), State: state, prefs: state.Preferences.Value()}

	// Every page is rebuilt when list settings change, so spin button clicks are coalesced.
	publish, control := debounce.Debounce(func() {
		glib.IdleAdd(w.apply)
	}, 500*time.Millisecond)
	w.publish = publish
	w.ConnectCloseRequest(func() bool {
		control.Flush()
		return false
	})

	w.Add(w.createGeneralPage())
	w.Add(w.createListPage())

	return &w
}

// apply publishes the settings edited here. The log level is owned by the log page.
func (w *PrefsWindow) apply() {
	prefs := w.Preferences.Value()
	prefs.ColorScheme = w.prefs.ColorScheme
	prefs.List = w.prefs.List
	prefs.Log.Lines = w.prefs.Log.Lines
	w.Preferences.Pub(prefs)
}

func (w *PrefsWindow) createGeneralPage() *adw.PreferencesPage {
	page := adw.NewPreferencesPage()
	page.SetTitle("General")
	page.SetIconName("document-properties-symbolic")

	general := adw.NewPreferencesGroup()
	colorScheme := adw.NewComboRow()
	colorScheme.SetTitle("Color Scheme")
	themes := gtk.NewStringList([]string{"Default", "Light", "Dark"})
	colorScheme.SetModel(themes)
	colorScheme.SetSelected(uint(max(slices.Index(colorSchemes, w.prefs.ColorScheme), 0)))
	colorScheme.Connect("notify::selected-item", func() {
		w.prefs.ColorScheme = colorSchemes[colorScheme.Selected()]
		w.apply()
	})
	general.Add(colorScheme)
	page.Add(general)

	log := adw.NewPreferencesGroup()
	log.SetTitle("Log")
	log.Add(w.spinRow("Lines", "Lines generated when the log opens", w.prefs.Log.Lines, 100, 1000000, func(v int) {
		w.prefs.Log.Lines = v
	}))
	page.Add(log)

	return page
}

func (w *PrefsWindow) createListPage() *adw.PreferencesPage {
	page := adw.NewPreferencesPage()
	page.SetTitle("Lists")
	page.SetIconName("view-list-symbolic")

	items := adw.NewPreferencesGroup()
	items.SetTitle("Items")
	items.Add(w.spinRow("Item count", "Generated items and document lines", w.prefs.List.ItemCount, 1, 1000000, func(v int) {
		w.prefs.List.ItemCount = v
	}))

	fixed := adw.NewActionRow()
	fixed.SetTitle("Fixed size")
	fixed.SetSubtitle("Item heights do not depend on the window width")
	toggle := gtk.NewSwitch()
	toggle.SetVAlign(gtk.AlignCenter)
	toggle.SetActive(w.prefs.List.FixedSize)
	toggle.Connect("notify::active", func() {
		w.prefs.List.FixedSize = toggle.Active()
		w.publish()
	})
	fixed.AddSuffix(toggle)
	fixed.SetActivatableWidget(toggle)
	items.Add(fixed)
	page.Add(items)

	engine := adw.NewPreferencesGroup()
	engine.SetTitle("Layout")
	engine.SetDescription("Applies to lists created after the change")
	engine.Add(w.spinRow("Estimated item size", "Extent assumed for items that were never measured", w.prefs.List.EstimatedItemSize, 1, 4096, func(v int) {
		w.prefs.List.EstimatedItemSize = v
	}))
	engine.Add(w.spinRow("Cache capacity", "Measured sizes kept before the least recently used is evicted", w.prefs.List.CacheCapacity, 1, 1000000, func(v int) {
		w.prefs.List.CacheCapacity = v
	}))
	engine.Add(w.spinRow("Invalidation threshold", "Width change in pixels that drops measured sizes", w.prefs.List.InvalidationThreshold, 1, 4096, func(v int) {
		w.prefs.List.InvalidationThreshold = v
	}))
	engine.Add(w.spinRow("Overscan", "Pixels past the viewport where items are already prepared", w.prefs.List.Overscan, 1, 2000, func(v int) {
		w.prefs.List.Overscan = v
	}))
	engine.Add(w.spinRow("End padding", "Space after the last item", w.prefs.List.EndPadding, 1, 1000, func(v int) {
		w.prefs.List.EndPadding = v
	}))
	page.Add(engine)

	return page
}

func (w *PrefsWindow) spinRow(title, subtitle string, value, lower, upper int, set func(int)) *adw.ActionRow {
	row := adw.NewActionRow()
	row.SetTitle(title)
	row.SetSubtitle(subtitle)

	spin := gtk.NewSpinButtonWithRange(float64(lower), float64(upper), 1)
	spin.SetValue(float64(value))
	spin.SetVAlign(gtk.AlignCenter)
	spin.ConnectValueChanged(func() {
		set(spin.ValueAsInt())
		w.publish()
	})
	row.AddSuffix(spin)
	row.SetActivatableWidget(spin)
	return row
}
