package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/tui/components"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetState tracks the budget tab state.
type budgetState struct {
	cursor int // selected suggestion
	last   *budget.BalanceReport
}

func (a App) updateBudgetKey(k string) (App, tea.Cmd, bool) {
	switch k {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "enter":
		suggestions := a.suggestions()
		if a.budget.cursor < 0 || a.budget.cursor >= len(suggestions) {
			return a, nil, true
		}
		sg := suggestions[a.budget.cursor]
		if !sg.Actionable() {
			a.flash = "Nothing to apply"
			return a, nil, true
		}
		before := budget.PlanTotal(a.plan)
		p := budget.ApplyToPlan(a.plan, sg.Strategy, sg.Cap)
		after := budget.PlanTotal(p)
		cmd := a.commit(p, fmt.Sprintf("Applied %s: %s (%s)", sg.Strategy,
			cli.FormatCost(after), cli.FormatDelta(after, before)))
		return a, cmd, true
	case "B":
		p, report := budget.BalancePlan(a.plan, a.cfg.Event.BudgetCap)
		a.budget.last = &report
		msg := fmt.Sprintf("Balanced %s -> %s", cli.FormatCost(report.Before), cli.FormatCost(report.After))
		if !report.WithinBudget {
			msg += " (still over cap)"
		}
		cmd := a.commit(p, msg)
		return a, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	ev := a.cfg.Event

	total := budget.PlanTotal(a.plan)
	remaining := ev.BudgetCap - total
	over := !budget.IsWithinBudget(total, ev.BudgetCap)

	remainingLabel := "Remaining"
	remainingValue := cli.FormatCost(remaining)
	if over {
		remainingLabel = "Over by"
		remainingValue = cli.FormatCost(-remaining)
	}

	metrics := []components.Metric{
		{Label: "Total", Value: cli.FormatCost(total), Warn: over},
		{Label: "Budget Cap", Value: cli.FormatCost(ev.BudgetCap)},
		{Label: remainingLabel, Value: remainingValue, Warn: over},
		{Label: "Per Student", Value: cli.FormatCost(budget.PerStudent(total, ev.StudentCount)),
			Delta: fmt.Sprintf("%d students", ev.StudentCount)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 12
	if barW < 10 {
		barW = 10
	}
	spend := components.BudgetBar("Spent", total, ev.BudgetCap, 6, barW)
	b.WriteString(components.ContentCard("Budget", spend, cw))
	b.WriteString("\n")

	r := a.budget.last
	if r == nil {
		b.WriteString(components.ContentCard("Suggestions", a.renderSuggestions(innerW), cw))
		return b.String()
	}

	// Suggestions and the last auto-balance side by side
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	applied := make([]string, 0, len(r.Applied))
	for _, s := range r.Applied {
		applied = append(applied, s.String())
	}
	if len(applied) == 0 {
		applied = append(applied, "none")
	}
	result := "within cap"
	if !r.WithinBudget {
		result = "still over cap"
	}
	last := strings.Join([]string{
		mutedStyle.Render("Before   ") + valueStyle.Render(cli.FormatCost(r.Before)),
		mutedStyle.Render("After    ") + valueStyle.Render(cli.FormatCost(r.After)),
		mutedStyle.Render("Applied  ") + valueStyle.Render(strings.Join(applied, ", ")),
		mutedStyle.Render("Result   ") + valueStyle.Render(result),
	}, "\n")

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Suggestions", a.renderSuggestions(components.CardInnerWidth(widths[0])), widths[0]),
		components.ContentCard("Last Auto-Balance", last, widths[1]),
	}))

	return b.String()
}

func (a App) renderSuggestions(innerW int) string {
	t := theme.Active

	okStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	tagStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	suggestions := a.suggestions()
	lines := make([]string, 0, len(suggestions)+2)
	for i, sg := range suggestions {
		text := fmt.Sprintf("%d. %s", i+1, sg.Message)
		if !sg.Actionable() {
			lines = append(lines, okStyle.Render(text))
			continue
		}
		tag := " [" + sg.Strategy.String() + "]"
		text = truncStr(text, innerW-lipgloss.Width(tag))
		if i == a.budget.cursor {
			lines = append(lines, selectedStyle.Render(text)+tagStyle.Render(tag))
		} else {
			lines = append(lines, rowStyle.Render(text)+tagStyle.Render(tag))
		}
	}

	if hasActionable(suggestions) {
		lines = append(lines, "", hintStyle.Render("[Enter] apply selected  [B] auto-balance"))
	}
	return strings.Join(lines, "\n")
}

func hasActionable(suggestions []model.Suggestion) bool {
	for _, s := range suggestions {
		if s.Actionable() {
			return true
		}
	}
	return false
}
