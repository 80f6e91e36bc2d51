// Package tui provides the interactive Bubble Tea planner for partyplan.
package tui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/config"
	"github.com/theirongolddev/partyplan/internal/export"
	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/store"
	"github.com/theirongolddev/partyplan/internal/tui/components"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SavedMsg is sent when a background plan save finishes.
type SavedMsg struct {
	Written int
	At      time.Time
	Err     error
}

const (
	tabItems = iota
	tabBudget
	tabSchedule
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	plan   model.Plan
	cfg    config.Config
	store  *store.Store // nil disables persistence
	dbPath string
	log    *log.Logger

	// saveConfig persists settings; replaced in tests.
	saveConfig func(config.Config) error

	// Save state. Only one save runs at a time; edits made meanwhile set
	// savePending and are written when it finishes.
	saving      bool
	savePending bool
	lastSaved   time.Time
	saveErr     error
	spinner     spinner.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string // one-line feedback shown in the status bar

	// Per-tab state
	items    itemsState
	budget   budgetState
	schedule scheduleState
	settings settingsState

	// Item add/edit form (huh)
	form     *huh.Form
	formVals *itemFormValues
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	minContentHeight = 5 // minimum content area height
)

// Options configures NewApp.
type Options struct {
	Plan   model.Plan
	Config config.Config
	Store  *store.Store
	DBPath string
	// LogOutput receives background save failures. Nil discards them.
	LogOutput io.Writer
	// SaveConfig persists settings edits. Nil uses config.Save.
	SaveConfig func(config.Config) error
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}

	saveConfig := opts.SaveConfig
	if saveConfig == nil {
		saveConfig = config.Save
	}

	plan := opts.Plan.Clone()
	plan.Schedule = model.NormalizeSchedule(plan.Schedule)

	return App{
		plan:       plan,
		cfg:        opts.Config,
		store:      opts.Store,
		dbPath:     opts.DBPath,
		log:        log.New(out, "partyplan: ", log.LstdFlags),
		saveConfig: saveConfig,
		spinner:    sp,
	}
}

// Plan returns the current plan.
func (a App) Plan() model.Plan {
	return a.plan.Clone()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// commit replaces the plan, sets the flash line and schedules a save.
func (a *App) commit(p model.Plan, flash string) tea.Cmd {
	a.plan = p
	a.flash = flash
	a.clampCursors()
	return a.requestSave()
}

func (a *App) requestSave() tea.Cmd {
	if a.store == nil {
		return nil
	}
	if a.saving {
		a.savePending = true
		return nil
	}
	a.saving = true
	return tea.Batch(saveCmd(a.store, a.plan.Clone(), a.log), a.spinner.Tick)
}

// saveCmd writes the plan in the background. Failures are logged and
// reported back; they never block editing.
func saveCmd(st *store.Store, p model.Plan, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		n, err := st.SavePlan(p)
		if err != nil {
			logger.Printf("saving plan: %v", err)
		}
		return SavedMsg{Written: n, At: time.Now(), Err: err}
	}
}

func (a *App) clampCursors() {
	a.items.cursor = clamp(a.items.cursor, 0, len(a.plan.VisibleItems())-1)
	a.budget.cursor = clamp(a.budget.cursor, 0, len(a.suggestions())-1)
	a.schedule.cursor = clamp(a.schedule.cursor, 0, model.ScheduleMinutes-1)
}

func (a App) suggestions() []model.Suggestion {
	return budget.PlanSuggestions(a.plan, a.cfg.Event.BudgetCap)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case SavedMsg:
		a.saving = false
		a.saveErr = msg.Err
		if msg.Err == nil {
			a.lastSaved = msg.At
		}
		if a.savePending {
			a.savePending = false
			cmd := a.requestSave()
			return a, cmd
		}
		return a, nil

	case spinner.TickMsg:
		if a.saving {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the item form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateItemForm(msg)
	}
	if a.schedule.editing {
		var cmd tea.Cmd
		a.schedule.input, cmd = a.schedule.input.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Modal inputs intercept all keys
	if a.form != nil {
		return a.updateItemForm(msg)
	}
	if a.activeTab == tabSchedule && a.schedule.editing {
		return a.updateScheduleInput(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.flash = ""

	var (
		handled bool
		cmd     tea.Cmd
	)
	switch a.activeTab {
	case tabItems:
		a, cmd, handled = a.updateItemsKey(key)
	case tabBudget:
		a, cmd, handled = a.updateBudgetKey(key)
	case tabSchedule:
		a, cmd, handled = a.updateScheduleKey(key)
	case tabSettings:
		a, cmd, handled = a.updateSettingsKey(key)
	}
	if handled {
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "y":
		return a.copyMarkdown()
	case "E":
		return a.exportMarkdown()
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "1", "2", "3", "4":
		a.activeTab = int(key[0] - '1')
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// moveCursor moves the active tab's list cursor by delta.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabItems:
		a.items.cursor += delta
	case tabBudget:
		a.budget.cursor += delta
	case tabSchedule:
		if !a.schedule.editing {
			a.schedule.cursor += delta
		}
	case tabSettings:
		if !a.settings.editing {
			a.settings.cursor = clamp(a.settings.cursor+delta, 0, settingsFieldCount-1)
		}
	}
	a.clampCursors()
}

func (a App) copyMarkdown() (tea.Model, tea.Cmd) {
	if err := export.CopyToClipboard(a.markdown()); err != nil {
		a.flash = err.Error()
		return a, nil
	}
	a.flash = "Copied plan to clipboard"
	return a, nil
}

func (a App) exportMarkdown() (tea.Model, tea.Cmd) {
	path := a.cfg.Export.File
	if err := export.WriteFile(path, a.markdown()); err != nil {
		a.flash = err.Error()
		return a, nil
	}
	a.flash = "Exported to " + path
	return a, nil
}

func (a App) markdown() string {
	return export.Markdown(a.plan, export.Event{
		BudgetCap:    a.cfg.Event.BudgetCap,
		StudentCount: a.cfg.Event.StudentCount,
	})
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  partyplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"i b s x", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move in lists"},
		}},
		{"Items", []struct{ key, desc string }{
			{"a e d", "Add / Edit / Delete item"},
			{"+ -", "Change quantity"},
			{"p", "Toggle peanuts on item"},
			{"f", "Toggle peanut filter"},
			{"t", "Apply next template"},
		}},
		{"Budget", []struct{ key, desc string }{
			{"Enter", "Apply selected suggestion"},
			{"B", "Auto-balance"},
		}},
		{"Anywhere", []struct{ key, desc string }{
			{"y", "Copy Markdown to clipboard"},
			{"E", "Export Markdown file"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar plus an event pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	total := budget.PlanTotal(a.plan)
	totalStyle := pillAccentStyle
	if !budget.IsWithinBudget(total, a.cfg.Event.BudgetCap) {
		totalStyle = totalStyle.Foreground(t.Red)
	}

	pill := pillStyle.Render(" ") +
		totalStyle.Render(cli.FormatCost(total)) +
		pillStyle.Render(" / ") +
		pillAccentStyle.Render(cli.FormatCost(a.cfg.Event.BudgetCap)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(fmt.Sprintf("%d students", a.cfg.Event.StudentCount))
	if a.plan.PeanutFreeOnly {
		pill += pillStyle.Render(" │ ") + pillAccentStyle.Render("peanut-free")
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.saveStatus())

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch {
	case a.form != nil:
		content = components.ContentCard(a.formTitle(), a.form.View(), cw)
	case a.activeTab == tabItems:
		content = a.renderItemsTab(cw)
	case a.activeTab == tabBudget:
		content = a.renderBudgetTab(cw)
	case a.activeTab == tabSchedule:
		content = a.renderScheduleTab(cw, contentH)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	if a.flash != "" {
		return a.flash
	}
	switch a.activeTab {
	case tabItems:
		return "[a]dd [e]dit [d]elete [+/-]qty [p]eanuts [f]ilter [t]emplate  [?]help [q]uit"
	case tabBudget:
		return "[enter]apply [B]alance  [?]help [q]uit"
	case tabSchedule:
		return "[enter]edit [c]lear  [?]help [q]uit"
	default:
		return "[enter]edit  [?]help [q]uit"
	}
}

func (a App) saveStatus() string {
	switch {
	case a.saving:
		return a.spinner.View() + " saving"
	case a.saveErr != nil:
		return "save failed"
	case !a.lastSaved.IsZero():
		return "saved " + a.lastSaved.Format("15:04:05")
	default:
		return ""
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > limit-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
