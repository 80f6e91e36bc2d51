package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers:  []string{"Item", "Total"},
		TextCols: 1,
		Rows: [][]string{
			{"Crème brûlée cups", "$27.99"},
			{"---"},
			{"Cups", "$3.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("lines = %d, want 7:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderBudgetBar(t *testing.T) {
	if got := RenderBudgetBar(10, 0, 20); got != "" {
		t.Errorf("zero cap bar = %q, want empty", got)
	}
	bar := RenderBudgetBar(45, 30, 20)
	if !strings.Contains(bar, "$45.00") || !strings.Contains(bar, "$30.00") {
		t.Errorf("bar missing amounts: %q", bar)
	}
	if strings.Count(bar, "█") != 20 {
		t.Errorf("over-cap bar should be full: %q", bar)
	}
}
