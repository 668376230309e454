package widget

import "github.com/diamondburned/gotk4/pkg/gtk/v4"

// NewStatusIcon shows whether an item has a trusted size: a check mark once the size was
// confirmed by repeated measurements, a warning while it is a first observation.
func NewStatusIcon(ok bool) *gtk.Image {
	icon := gtk.NewImage()
	icon.SetHAlign(gtk.AlignStart)
	SetStatusIcon(icon, ok)
	return icon
}

// SetStatusIcon updates an icon made by NewStatusIcon for a recycled panel.
func SetStatusIcon(icon *gtk.Image, ok bool) {
	icon.RemoveCSSClass(string(StatusSuccess))
	icon.RemoveCSSClass(string(StatusWarning))
	if ok {
		icon.SetFromIconName("emblem-ok-symbolic")
		icon.AddCSSClass(string(StatusSuccess))
		icon.SetTooltipText("Size verified")
		return
	}
	icon.SetFromIconName("dialog-warning")
	icon.AddCSSClass(string(StatusWarning))
	icon.SetTooltipText("Size measured once")
}
