package components

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on how much of the cap
// is spent. Anything over the cap is red.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Red)
	case pct >= 0.95:
		return string(t.Orange)
	case pct >= 0.8:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders spend against the cap: label, bar, and percentage.
// The bar is clamped at full width when over the cap; the percentage is not.
func BudgetBar(label string, total, budgetCap float64, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if budgetCap > 0 {
		pct = total / budgetCap
	}
	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
