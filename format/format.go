// Package format converts raw metric values into display strings. All
// functions are pure and deterministic.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Bytes converts a byte count to a human-readable string using 1024-based
// units (1024 -> "1.0 KB").
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Percent formats a percentage with one decimal place.
func Percent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// PercentInt formats a percentage rounded to a whole number.
func PercentInt(percent float64) string {
	return fmt.Sprintf("%.0f%%", percent)
}

// UsedOfTotal renders a "used/total percent%" usage summary, e.g.
// "3.1 GB/15.5 GB 20%".
func UsedOfTotal(used, total uint64, percent float64) string {
	return fmt.Sprintf("%s/%s %s", Bytes(used), Bytes(total), PercentInt(percent))
}

// num renders a float without a trailing ".0" (45.0 -> "45", 45.5 -> "45.5").
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Temperature formats a Celsius value, e.g. "45°C".
func Temperature(celsius float64) string {
	return num(celsius) + "°C"
}

// Sensor formats a full sensor entry with its thresholds, e.g.
// "45°C (high = 70°C, critical = 90°C)".
func Sensor(current, high, critical float64) string {
	return fmt.Sprintf("%s (high = %s, critical = %s)",
		Temperature(current), Temperature(high), Temperature(critical))
}

// Frequency converts MHz to a human-readable string.
func Frequency(mhz float64) string {
	if mhz < 1000 {
		return fmt.Sprintf("%.0f MHz", mhz)
	}
	return fmt.Sprintf("%.2f GHz", mhz/1000)
}

// Uptime formats an uptime given in seconds. The largest three units are
// shown, the rest dropped: "8d 2h 5m", "2h 5m 47s", "5m 47s", "47 sec".
func Uptime(seconds uint64) string {
	minutes, secs := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	days, hours := hours/24, hours%24
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%d sec", secs)
	}
}

// Truncate shortens a string to maxLen, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string with spaces up to width.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
