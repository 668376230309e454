package widget

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/ctxt"
	"k8s.io/klog/v2"
)

// ShowErrorDialog reports err on top of the window stored in ctx.
func ShowErrorDialog(ctx context.Context, title string, err error) *adw.MessageDialog {
	klog.Errorf("%s: %v", title, err)
	parent, _ := ctxt.From[*gtk.Window](ctx)
	dialog := adw.NewMessageDialog(parent, title, err.Error())
	dialog.AddResponse("ok", "Ok")
	dialog.SetDefaultResponse("ok")
	dialog.SetCloseResponse("ok")
	dialog.Show()
	return dialog
}
