// Package cmd implements the partyplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Event]")
	fmt.Printf("    Budget cap:    %s\n", cli.FormatCost(cfg.Event.BudgetCap))
	fmt.Printf("    Students:      %d\n", cfg.Event.StudentCount)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Database:      %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:         %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    File:          %s\n", cfg.Export.File)
	fmt.Println()

	fmt.Println("  Run `partyplan setup` to reconfigure.")
	return nil
}
