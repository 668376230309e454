package util

import (
	"fmt"
	"time"
)

func HumanizeApproximateDuration(d time.Duration) string {
	const (
		day   = time.Hour * 24
		month = day * 30
		year  = 365 * day
	)
	switch {
	case d >= year:
		return fmt.Sprintf("%dy", d/year)
	case d >= month:
		return fmt.Sprintf("%dmo", d/month)
	case d >= day:
		return fmt.Sprintf("%dd", d/day)
	case d >= time.Hour:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", d/time.Minute)
	}
	return fmt.Sprintf("%ds", d/time.Second)
}

// HumanizeCount shortens large counters for status lines, e.g. 12345 -> 12.3k.
func HumanizeCount[T ~int | ~uint64](n T) string {
	v := float64(n)
	switch {
	case v >= 1e9:
		return trimZero(fmt.Sprintf("%.1f", v/1e9)) + "G"
	case v >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	}
	return fmt.Sprintf("%d", n)
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
