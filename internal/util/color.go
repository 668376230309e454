package util

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
)

// SourceSchemeName picks the sourceview scheme matching the application style.
func SourceSchemeName(dark bool) string {
	if dark {
		return "Adwaita-dark"
	}
	return "Adwaita"
}

// SetSourceColorScheme follows the color scheme of the application, including later
// switches made in the preferences window.
func SetSourceColorScheme(buf *gtksource.Buffer) {
	manager := adw.StyleManagerGetDefault()
	apply := func() {
		buf.SetStyleScheme(gtksource.StyleSchemeManagerGetDefault().Scheme(SourceSchemeName(manager.Dark())))
	}
	apply()
	manager.NotifyProperty("dark", apply)
}
