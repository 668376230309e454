package ui

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type AboutWindow struct {
	*adw.AboutWindow
}

func NewAboutWindow(parent *gtk.Window, version string) *AboutWindow {
	w := AboutWindow{adw.NewAboutWindow()}
	w.SetApplicationName(ApplicationName)
	w.SetApplicationIcon("view-list-symbolic")
	w.SetVersion(version)
	w.SetComments("Virtual lists over large, variably sized data sets")
	w.SetTransientFor(parent)
	w.SetLicenseType(gtk.LicenseMPL20)
	return &w
}
