package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/internal/util"
	"github.com/getseabird/gallery/internal/virtuallist"
	"github.com/getseabird/gallery/widget"
)

// statsBar shows what a virtual list currently has on screen and how its cache and panel
// pool are doing.
type statsBar struct {
	*gtk.Box
	items    *gtk.Label
	verified *gtk.Label
	status   *gtk.Image
	cache    *widget.UsageBar
	pool     *widget.UsageBar
}

func newStatsBar() *statsBar {
	s := statsBar{
		Box:      gtk.NewBox(gtk.OrientationHorizontal, 12),
		items:    gtk.NewLabel(""),
		verified: gtk.NewLabel(""),
		status:   widget.NewStatusIcon(false),
		cache:    widget.NewUsageBar("Cache"),
		pool:     widget.NewUsageBar("Panels"),
	}
	s.AddCSSClass("stats-bar")
	s.items.SetHExpand(true)
	s.items.SetXAlign(0)
	s.verified.AddCSSClass("dim-label")

	s.Append(s.items)
	s.Append(s.status)
	s.Append(s.verified)
	s.Append(s.cache)
	s.Append(s.pool)
	return &s
}

func (s *statsBar) update(list *widget.VirtualList, items []virtuallist.VisibleItem) {
	count := list.Count()
	if len(items) == 0 {
		s.items.SetText(fmt.Sprintf("%s items", util.HumanizeCount(count)))
	} else {
		s.items.SetText(fmt.Sprintf("%d-%d of %s", items[0].Index, items[len(items)-1].Index, util.HumanizeCount(count)))
	}

	var verified int
	for _, item := range items {
		if state, ok := list.List().Measurement(item.Index); ok && isVerified(state) {
			verified++
		}
	}
	s.verified.SetText(fmt.Sprintf("%d/%d verified", verified, len(items)))
	widget.SetStatusIcon(s.status, len(items) > 0 && verified == len(items))

	cache := list.List().CacheStats()
	s.cache.SetUsage(cache.Len, cache.Capacity)
	if lookups := cache.Hits + cache.Misses; lookups > 0 {
		s.cache.SetTooltipText(fmt.Sprintf("%d of %d sizes, %s hits, %s misses, %s evictions",
			cache.Len, cache.Capacity,
			util.HumanizeCount(cache.Hits), util.HumanizeCount(cache.Misses), util.HumanizeCount(cache.Evictions)))
	}

	pool := list.List().PoolStats()
	s.pool.SetUsage(pool.Active, pool.Total)
}

// isVerified reports whether a size was confirmed by more than one measurement.
func isVerified(state virtuallist.MeasurementState) bool {
	switch s := state.(type) {
	case virtuallist.Verified:
		return true
	case virtuallist.Measured:
		return s.Validated
	}
	return false
}
