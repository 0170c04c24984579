package utils

import (
	"fmt"
	"time"
)

// FormatDuration formats a wall-clock duration with a resolution that
// matches its magnitude.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	if d < time.Minute {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

// FormatHours renders an amount of simulated hours for reports. Whole
// values print without decimals, everything else with two.
func FormatHours(hours float64) string {
	if hours == float64(int64(hours)) {
		return fmt.Sprintf("%dh", int64(hours))
	}
	return fmt.Sprintf("%.2fh", hours)
}
