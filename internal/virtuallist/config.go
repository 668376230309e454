package virtuallist

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"
	"k8s.io/klog/v2"
)

// DefaultBreakpoints are common widths at which wrapped text tends to reflow.
var DefaultBreakpoints = []int{320, 480, 640, 768, 1024, 1280, 1440, 1920}

type Config struct {
	Orientation Orientation
	Mode        SizingMode

	// EstimatedItemSize is used along the scroll axis for items that were never measured.
	EstimatedItemSize int
	CacheCapacity     int
	// Tolerance is the largest difference between two measurements still considered equal.
	Tolerance int

	// InvalidationThreshold is the smallest cross-axis change that is considered at all.
	InvalidationThreshold int
	// FixedSweepThreshold is the smallest cross-axis change that triggers a staleness
	// sweep for fixed size items.
	FixedSweepThreshold int
	// StaleGenerations is how many sweeps an entry survives without being re-measured.
	StaleGenerations uint64
	// ProximityItems is how far from the first visible index a breakpoint crossing still
	// invalidates an entry.
	ProximityItems int
	Breakpoints    []int

	// Overscan extends candidate detection past the far edge of the viewport.
	Overscan int
	// TailItems is how many trailing items are always measured once the scan reaches them.
	TailItems int
	// EndPadding is added after the last item when the end of the list is reached.
	EndPadding int

	Logger logr.Logger
}

func DefaultConfig() Config {
	return Config{
		Orientation:           Vertical,
		Mode:                  DynamicSize,
		EstimatedItemSize:     40,
		CacheCapacity:         100,
		Tolerance:             2,
		InvalidationThreshold: 5,
		FixedSweepThreshold:   100,
		StaleGenerations:      3,
		ProximityItems:        20,
		Breakpoints:           DefaultBreakpoints,
		Overscan:              100,
		TailItems:             3,
		EndPadding:            10,
		Logger:                klog.Background().WithName("virtuallist"),
	}
}

// withDefaults fills the fields for which zero is not a usable value. Every other
// threshold is taken as given, so a Config should start from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EstimatedItemSize == 0 {
		c.EstimatedItemSize = d.EstimatedItemSize
	}
	if c.CacheCapacity == 0 {
		c.CacheCapacity = d.CacheCapacity
	}
	if c.StaleGenerations == 0 {
		c.StaleGenerations = d.StaleGenerations
	}
	if c.Breakpoints == nil {
		c.Breakpoints = d.Breakpoints
	}
	if c.Logger.GetSink() == nil {
		c.Logger = d.Logger
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.EstimatedItemSize < 1:
		return fmt.Errorf("%w: estimated item size %d", ErrInvalidConfiguration, c.EstimatedItemSize)
	case c.CacheCapacity < 1:
		return fmt.Errorf("%w: cache capacity %d", ErrInvalidConfiguration, c.CacheCapacity)
	case c.Tolerance < 0, c.InvalidationThreshold < 0, c.FixedSweepThreshold < 0, c.ProximityItems < 0,
		c.Overscan < 0, c.TailItems < 0, c.EndPadding < 0:
		return fmt.Errorf("%w: negative threshold", ErrInvalidConfiguration)
	}
	return nil
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
