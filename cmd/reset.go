package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/templates"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default items, schedule and filter",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("resetting plan: %w", err)
	}
	s.plan = templates.DefaultPlan()
	if err := s.save(); err != nil {
		return err
	}

	fmt.Println("  Plan reset to defaults.")
	return nil
}
