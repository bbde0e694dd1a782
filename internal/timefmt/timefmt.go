// Package timefmt converts study durations to human-readable strings.
package timefmt

import (
	"fmt"
	"time"
)

// Format renders a duration with at most two units, e.g. "2h 34m" or "45s".
func Format(d time.Duration) string {
	if d < 0 {
		return "-" + Format(-d)
	}

	const day = 24 * time.Hour

	if d == 0 {
		return "0s"
	}

	days := d / day
	d %= day

	hours := d / time.Hour
	d %= time.Hour

	minutes := d / time.Minute
	d %= time.Minute

	seconds := d / time.Second

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Compact renders only the largest non-zero unit, e.g. "3h".
func Compact(d time.Duration) string {
	if d < 0 {
		return "-" + Compact(-d)
	}

	const day = 24 * time.Hour

	if d == 0 {
		return "0s"
	}

	if days := d / day; days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	if hours := d / time.Hour; hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	if minutes := d / time.Minute; minutes > 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", d/time.Second)
}

// Clock renders a second count as a zero-padded timer display, e.g. "1:02:05".
// Used by the live session view.
func Clock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Seconds renders a raw second count with Format's rules.
func Seconds(seconds int64) string {
	return Format(time.Duration(seconds) * time.Second)
}
