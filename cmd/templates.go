package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/templates"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"template"},
	Short:   "List or apply built-in party templates",
	RunE:    runTemplatesList,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Replace the shopping list with a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesApply,
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesApplyCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	all := templates.All()
	rows := make([][]string, 0, len(all))
	for _, t := range all {
		rows = append(rows, []string{
			t.ID,
			t.Name,
			t.Notes,
			cli.FormatNumber(int64(len(t.Items))),
			cli.FormatCost(budget.CalculateTotal(t.Items, false)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"ID", "Name", "Notes", "Items", "Total"},
		Rows:     rows,
		TextCols: 3,
	}))
	return nil
}

func runTemplatesApply(_ *cobra.Command, args []string) error {
	t, err := templates.ByID(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.plan.Items = t.Items
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Applied %s: %d items, total %s\n", t.Name, len(t.Items),
		cli.FormatCost(budget.PlanTotal(s.plan)))
	return nil
}
