package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/tui/components"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scheduleState tracks the schedule tab state.
type scheduleState struct {
	cursor  int // selected minute
	editing bool
	input   textinput.Model
}

func (a App) updateScheduleKey(k string) (App, tea.Cmd, bool) {
	switch k {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g":
		a.schedule.cursor = 0
	case "G":
		a.schedule.cursor = model.ScheduleMinutes - 1
	case "ctrl+d":
		a.moveCursor(10)
	case "ctrl+u":
		a.moveCursor(-10)
	case "enter":
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 50
		ti.Placeholder = "Activity"
		ti.SetValue(a.plan.Schedule[a.schedule.cursor].Text)
		ti.CursorEnd()
		ti.Focus()
		a.schedule.input = ti
		a.schedule.editing = true
		return a, textinput.Blink, true
	case "c":
		return a.setSlot(a.schedule.cursor, "")
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateScheduleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.schedule.editing = false
		next, cmd, _ := a.setSlot(a.schedule.cursor, strings.TrimSpace(a.schedule.input.Value()))
		return next, cmd
	case "esc":
		a.schedule.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.schedule.input, cmd = a.schedule.input.Update(msg)
	return a, cmd
}

func (a App) setSlot(minute int, text string) (App, tea.Cmd, bool) {
	p := a.plan.Clone()
	if err := p.SetSlot(minute, text); err != nil {
		a.flash = err.Error()
		return a, nil, true
	}
	cmd := a.commit(p, "")
	return a, cmd, true
}

func (a App) renderScheduleTab(cw, contentH int) string {
	t := theme.Active

	minuteStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	// Card border + title take three lines
	rows := contentH - 3
	if rows < 1 {
		rows = 1
	}
	if rows > model.ScheduleMinutes {
		rows = model.ScheduleMinutes
	}

	start := a.schedule.cursor - rows/2
	if start > model.ScheduleMinutes-rows {
		start = model.ScheduleMinutes - rows
	}
	if start < 0 {
		start = 0
	}

	slots := a.plan.Schedule
	lines := make([]string, 0, rows)
	for m := start; m < start+rows && m < len(slots); m++ {
		slot := slots[m]
		label := cli.FormatMinute(slot.Minute)

		if m == a.schedule.cursor {
			if a.schedule.editing {
				lines = append(lines, markerStyle.Render("▸ ")+minuteStyle.Render(label+"  ")+a.schedule.input.View())
				continue
			}
			text := truncStr(slot.Text, innerW-6)
			line := markerStyle.Render("▸ ") + selectedStyle.Render(label+"  "+text)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += selectedStyle.Render(strings.Repeat(" ", pad))
			}
			lines = append(lines, line)
			continue
		}

		var text string
		if slot.Text == "" {
			text = emptyStyle.Render("·")
		} else {
			text = textStyle.Render(truncStr(slot.Text, innerW-6))
		}
		lines = append(lines, spaceStyle.Render("  ")+minuteStyle.Render(label)+spaceStyle.Render("  ")+text)
	}

	title := fmt.Sprintf("Schedule (%d minutes)  %d-%d", model.ScheduleMinutes, start, start+len(lines)-1)
	return components.ContentCard(title, strings.Join(lines, "\n"), cw)
}
