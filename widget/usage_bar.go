package widget

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// UsageBar shows how full a bounded structure is, such as the size cache or the panel pool.
type UsageBar struct {
	*gtk.Box
	levelBar *gtk.LevelBar
	label    *gtk.Label
}

func NewUsageBar(title string) *UsageBar {
	box := gtk.NewBox(gtk.OrientationHorizontal, 4)
	box.SetVAlign(gtk.AlignCenter)

	levelBar := gtk.NewLevelBar()
	levelBar.SetSizeRequest(60, -1)
	levelBar.SetVAlign(gtk.AlignCenter)
	// down from offset, not up
	levelBar.RemoveOffsetValue(gtk.LEVEL_BAR_OFFSET_LOW)
	levelBar.RemoveOffsetValue(gtk.LEVEL_BAR_OFFSET_HIGH)
	levelBar.AddOffsetValue("lb-normal", .85)
	levelBar.AddOffsetValue("lb-warning", .95)
	levelBar.AddOffsetValue("lb-error", 1)

	label := gtk.NewLabel(title)
	label.AddCSSClass("dim-label")
	box.Append(label)
	box.Append(levelBar)

	return &UsageBar{Box: box, levelBar: levelBar, label: label}
}

func (b *UsageBar) SetUsage(used, capacity int) {
	if capacity <= 0 {
		b.levelBar.SetValue(0)
		b.SetTooltipText("")
		return
	}
	ratio := float64(used) / float64(capacity)
	b.levelBar.SetValue(min(ratio, 1))
	b.SetTooltipText(fmt.Sprintf("%d of %d (%.0f%%)", used, capacity, ratio*100))
}
