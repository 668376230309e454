package ui

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/style"
	"github.com/getseabird/gallery/internal/ui/common"
	"k8s.io/klog/v2"
)

const ApplicationName = "Gallery"

type Application struct {
	*adw.Application
	version string
}

func NewApplication(version string) (*Application, error) {
	gtk.Init()

	switch runtime.GOOS {
	case "windows":
		os.Setenv("GTK_CSD", "0")
	case "darwin":
		gtk.SettingsGetDefault().SetObjectProperty("gtk-decoration-layout", "close,minimize,maximize")
	}

	ctx := context.Background()

	state, err := common.NewState()
	if err != nil {
		return nil, err
	}

	state.Preferences.Sub(ctx, func(p api.Preferences) {
		adw.StyleManagerGetDefault().SetColorScheme(adw.ColorScheme(p.ColorScheme))
	})

	style.Load()

	a := Application{
		Application: adw.NewApplication("dev.skynomads.Gallery", gio.ApplicationFlagsNone),
		version:     version,
	}

	a.ConnectActivate(func() {
		NewGalleryWindow(ctx, &a.Application.Application, state, version).Present()
	})

	return &a, nil
}

// Run hands the arguments left over after flag parsing to GTK.
func (a *Application) Run() {
	args := append([]string{os.Args[0]}, flag.Args()...)
	if code := a.Application.Run(args); code > 0 {
		klog.Flush()
		os.Exit(code)
	}
}
