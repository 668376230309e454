package style

import (
	"embed"
	"runtime"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"golang.org/x/exp/slices"
)

//go:embed *.css
var fs embed.FS

// Platform selects window decorations and stylesheet tweaks.
type Platform string

const (
	Adwaita Platform = "adwaita"
	Windows Platform = "windows"
	Darwin  Platform = "darwin"
)

func Get() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Adwaita
	}
}

// Eq reports whether the current platform is one of platforms.
func Eq(platforms ...Platform) bool {
	return slices.Contains(platforms, Get())
}

func Load() {
	provider := gtk.NewCSSProvider()
	style, _ := fs.ReadFile("style.css")
	provider.LoadFromData(string(style))
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}
