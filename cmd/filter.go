package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:       "filter [on|off]",
	Short:     "Show or toggle the peanut-allergy filter",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		s.plan.PeanutFreeOnly = args[0] == "on"
		if err := s.save(); err != nil {
			return err
		}
	}

	fmt.Printf("  Peanut filter: %s  (total %s)\n",
		onOff(s.plan.PeanutFreeOnly), cli.FormatCost(budget.PlanTotal(s.plan)))
	return nil
}
