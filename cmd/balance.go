package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"

	"github.com/spf13/cobra"
)

var flagDryRun bool

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Auto-balance the shopping list toward the budget cap",
	Args:  cobra.NoArgs,
	RunE:  runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the result without saving")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	budgetCap := s.cfg.Event.BudgetCap
	balanced, report := budget.BalancePlan(s.plan, budgetCap)

	applied := make([]string, len(report.Applied))
	for i, st := range report.Applied {
		applied[i] = st.String()
	}
	if len(applied) == 0 {
		applied = append(applied, "none")
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Balance", "Value"},
		Rows: [][]string{
			{"Before", cli.FormatCost(report.Before)},
			{"After", cli.FormatCost(report.After)},
			{"Change", cli.FormatDelta(report.After, report.Before)},
			{"Cap", cli.FormatCost(budgetCap)},
			{"Applied", strings.Join(applied, ", ")},
		},
	}))

	if report.WithinBudget {
		fmt.Println(cli.RenderOK("Within budget."))
	} else {
		fmt.Println(cli.RenderWarning("Still over the cap. Remove items or run balance again."))
	}

	if flagDryRun {
		fmt.Println(cli.RenderMuted("  Dry run: nothing saved."))
		return nil
	}

	s.plan = balanced
	return s.save()
}
