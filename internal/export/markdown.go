// Package export renders the party plan as Markdown and delivers it to a
// file, the clipboard, or any writer.
package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/atotto/clipboard"
)

// Event carries the fixed event facts printed in the header.
type Event struct {
	BudgetCap    float64
	StudentCount int
}

// Markdown renders the plan summary. Items shown are the plan's visible
// items, so the peanut filter applies to both the list and the total.
func Markdown(p model.Plan, ev Event) string {
	var b strings.Builder

	b.WriteString("# Party Planner\n")
	fmt.Fprintf(&b, "Budget cap: $%s\n", strconv.FormatFloat(ev.BudgetCap, 'f', -1, 64))
	fmt.Fprintf(&b, "Students: %d\n\n", ev.StudentCount)

	lines := make([]string, 0, len(p.Items))
	for _, it := range p.VisibleItems() {
		name := it.Name
		if name == "" {
			name = "Item"
		}
		lines = append(lines, fmt.Sprintf("- %s x%d @ $%.2f = $%.2f",
			name, it.Quantity, it.Price, it.LineCost()))
	}
	b.WriteString(strings.Join(lines, "\n"))

	total := budget.CalculateTotal(p.Items, p.PeanutFreeOnly)
	fmt.Fprintf(&b, "\n\nTotal: $%.2f", total)
	if !budget.IsWithinBudget(total, ev.BudgetCap) {
		b.WriteString(" (over cap!)")
	}
	fmt.Fprintf(&b, "\nPer student: $%.2f", budget.PerStudent(total, ev.StudentCount))

	b.WriteString("\n\n## Schedule (60 minutes)\n")
	slots := model.NormalizeSchedule(p.Schedule)
	for i, s := range slots {
		fmt.Fprintf(&b, "%02d: %s", s.Minute, s.Text)
		if i < len(slots)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// WriteFile writes the Markdown document to path.
func WriteFile(path, md string) error {
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil { //nolint:gosec // exported plan is meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard places the Markdown document on the system clipboard.
func CopyToClipboard(md string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("copying to clipboard: no clipboard utility available")
	}
	if err := clipboardWrite(md); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
