package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/templates"

	"github.com/atotto/clipboard"
)

func TestMarkdown_Layout(t *testing.T) {
	plan := model.Plan{
		Items: []model.Item{
			{ID: "a", Name: "Pretzels", Price: 2.5, Quantity: 2},
			{ID: "b", Name: "", Price: 1, Quantity: 1},
			{ID: "c", Name: "Peanut Cookies", Price: 4, Quantity: 1, ContainsPeanuts: true},
		},
		Schedule:       templates.DefaultSchedule(),
		PeanutFreeOnly: true,
	}

	md := Markdown(plan, Event{BudgetCap: 30, StudentCount: 24})
	lines := strings.Split(md, "\n")

	wantHead := []string{
		"# Party Planner",
		"Budget cap: $30",
		"Students: 24",
		"",
		"- Pretzels x2 @ $2.50 = $5.00",
		"- Item x1 @ $1.00 = $1.00",
		"",
		"Total: $6.00",
		"Per student: $0.25",
		"",
		"## Schedule (60 minutes)",
		"00: Welcome, sanitize hands, find seats",
	}
	for i, want := range wantHead {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if strings.Contains(md, "Peanut Cookies") {
		t.Error("filtered peanut item appears in export")
	}
	if last := lines[len(lines)-1]; last != "59: Cleanup: tables, trash, sweep" {
		t.Errorf("last line = %q", last)
	}
	if n := len(lines) - len(wantHead) + 1; n != model.ScheduleMinutes {
		t.Errorf("schedule lines = %d, want %d", n, model.ScheduleMinutes)
	}
}

func TestMarkdown_OverCap(t *testing.T) {
	plan := model.Plan{
		Items: []model.Item{{ID: "cake", Name: "Cake", Price: 31, Quantity: 1}},
	}
	md := Markdown(plan, Event{BudgetCap: 30, StudentCount: 24})
	if !strings.Contains(md, "Total: $31.00 (over cap!)") {
		t.Fatalf("missing over-cap marker:\n%s", md)
	}
	if !strings.Contains(md, "\n00: \n") {
		t.Fatal("empty schedule slots should still be listed")
	}
}

func TestMarkdown_AtCapAfterRounding(t *testing.T) {
	plan := model.Plan{Items: []model.Item{
		{ID: "a", Name: "A", Price: 0.1, Quantity: 1},
		{ID: "b", Name: "B", Price: 0.2, Quantity: 1},
	}}
	md := Markdown(plan, Event{BudgetCap: 0.3, StudentCount: 1})
	if !strings.Contains(md, "Total: $0.30\n") {
		t.Fatalf("want within-cap total line:\n%s", md)
	}
	if strings.Contains(md, "over cap") {
		t.Fatalf("0.1 + 0.2 flagged over a 0.3 cap:\n%s", md)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party-plan.md")
	if err := WriteFile(path, "# hi"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# hi" {
		t.Fatalf("file = %q", data)
	}
}

func TestCopyToClipboard_WrapsError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this machine")
	}
	orig := clipboardWrite
	defer func() { clipboardWrite = orig }()

	boom := errors.New("boom")
	clipboardWrite = func(string) error { return boom }

	if err := CopyToClipboard("x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
