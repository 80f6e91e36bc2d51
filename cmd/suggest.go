package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"

	"github.com/spf13/cobra"
)

var flagApply int

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show budget suggestions, optionally applying one",
	Args:  cobra.NoArgs,
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&flagApply, "apply", 0, "Apply suggestion number N and save")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	budgetCap := s.cfg.Event.BudgetCap
	suggestions := budget.PlanSuggestions(s.plan, budgetCap)

	if flagApply == 0 {
		fmt.Println()
		printSuggestions(suggestions)
		return nil
	}

	if flagApply < 1 || flagApply > len(suggestions) {
		return fmt.Errorf("no suggestion %d (have %d)", flagApply, len(suggestions))
	}
	sg := suggestions[flagApply-1]
	if !sg.Actionable() {
		return fmt.Errorf("suggestion %d is informational and has nothing to apply", flagApply)
	}

	before := budget.PlanTotal(s.plan)
	s.plan = budget.ApplyToPlan(s.plan, sg.Strategy, sg.Cap)
	if err := s.save(); err != nil {
		return err
	}

	after := budget.PlanTotal(s.plan)
	fmt.Printf("  Applied %s: %s -> %s (%s)\n", sg.Strategy, cli.FormatCost(before),
		cli.FormatCost(after), cli.FormatDelta(after, before))
	return nil
}
