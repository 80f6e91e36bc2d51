// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCost formats a USD amount with cents and thousands separators.
// e.g., 4 -> "$4.00", 1234.5 -> "$1,234.50", -2.5 -> "-$2.50"
func FormatCost(cost float64) string {
	if cost < 0 {
		return "-" + FormatCost(-cost)
	}
	if cost >= 1000 {
		return "$" + humanize.FormatFloat("#,###.##", cost)
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats a cost change with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if math.Abs(delta) < 0.005 {
		return "±$0.00"
	}
	if delta > 0 {
		return "+" + FormatCost(delta)
	}
	return "-" + FormatCost(-delta)
}

// FormatMinute renders a schedule minute as a two-digit label.
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d", m)
}
