package gtkhost

import (
	"os"
	"runtime"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initGTK(t *testing.T) {
	t.Helper()
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display")
	}
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	if !gtk.InitCheck() {
		t.Skip("gtk could not be initialized")
	}
}

func TestBestSizeOfHiddenPanel(t *testing.T) {
	initGTK(t)
	c := NewCanvas()
	p := c.NewPanel()
	label := gtk.NewLabel("one\ntwo\nthree\nfour")
	p.SetChild(label)
	c.Hide(p)

	tall := c.BestSize(p, virtuallist.Vertical, 300)
	require.Positive(t, tall.Height, "a hidden panel still has a size")
	assert.Equal(t, 300, tall.Width)

	// the size assigned for placement is not a lower bound of the next measurement
	c.SetSize(p, tall)
	label.SetText("one")
	c.Relayout([]virtuallist.Surface{p})
	assert.Less(t, c.BestSize(p, virtuallist.Vertical, 300).Height, tall.Height)
}
