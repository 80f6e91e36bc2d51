package components

import (
	"strings"

	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with hints on the left and
// save state on the right. The left side is truncated on narrow terminals.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	left = " " + left
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		maxLeft := width - lipgloss.Width(right) - 1
		if maxLeft < 0 {
			maxLeft = 0
		}
		left = truncateWidth(left, maxLeft)
		padding = width - lipgloss.Width(left) - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}

func truncateWidth(s string, w int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
