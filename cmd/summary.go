package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Shopping list, totals and budget suggestions",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ev := s.cfg.Event
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PARTY PLAN  %s cap  %d students",
		cli.FormatCost(ev.BudgetCap), ev.StudentCount)))
	fmt.Println()

	visible := s.plan.VisibleItems()
	if len(visible) == 0 {
		fmt.Println("  No items yet. Add one with `partyplan items add` or apply a template.")
	} else {
		fmt.Print(cli.RenderTable(itemsTable(visible)))
	}
	fmt.Println()

	total := budget.PlanTotal(s.plan)
	fmt.Println(cli.RenderBudgetBar(total, ev.BudgetCap, 30))
	fmt.Println()

	spent := "n/a"
	if ev.BudgetCap > 0 {
		spent = cli.FormatPercent(total / ev.BudgetCap)
	}
	rows := [][]string{
		{"Total", cli.FormatCost(total)},
		{"Spent", spent},
		{"Remaining", cli.FormatCost(ev.BudgetCap - total)},
		{"Per student", cli.FormatCost(budget.PerStudent(total, ev.StudentCount))},
		{"---"},
		{"Peanut filter", onOff(s.plan.PeanutFreeOnly)},
		{"Hidden items", cli.FormatNumber(int64(len(s.plan.Items) - len(visible)))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Budget", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	printSuggestions(budget.PlanSuggestions(s.plan, ev.BudgetCap))
	return nil
}

// itemsTable builds the shopping list table shared by summary and items list.
func itemsTable(items []model.Item) cli.Table {
	rows := make([][]string, 0, len(items)+2)
	for _, it := range items {
		peanuts := ""
		if it.ContainsPeanuts {
			peanuts = "yes"
		}
		rows = append(rows, []string{
			it.ID,
			displayName(it),
			peanuts,
			cli.FormatNumber(int64(it.Quantity)),
			cli.FormatCost(it.Price),
			cli.FormatCost(it.LineCost()),
		})
	}
	return cli.Table{
		Headers:  []string{"ID", "Item", "Peanuts", "Qty", "Price", "Line"},
		Rows:     rows,
		TextCols: 3,
	}
}

func printSuggestions(suggestions []model.Suggestion) {
	fmt.Println("  Suggestions")
	for i, sg := range suggestions {
		line := fmt.Sprintf("%d. %s", i+1, sg.Message)
		if sg.Actionable() {
			fmt.Println("  " + line + cli.RenderMuted("  ["+sg.Strategy.String()+"]"))
			continue
		}
		fmt.Println(cli.RenderOK(line))
	}
}

func displayName(it model.Item) string {
	if it.Name == "" {
		return "Item"
	}
	return it.Name
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
