package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/config"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file, not flag overrides.
	cfg, _ := config.Load()

	capStr := strconv.FormatFloat(cfg.Event.BudgetCap, 'f', -1, 64)
	studentsStr := strconv.Itoa(cfg.Event.StudentCount)
	themeName := cfg.Appearance.Theme
	exportFile := cfg.Export.File

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to partyplan!").
				Description("A few questions about the party. Change them later with `partyplan setup`."),
			huh.NewInput().
				Title("Budget cap (USD)").
				Value(&capStr).
				Validate(func(s string) error {
					v, err := cli.ParseCost(s)
					if err == nil && v == 0 {
						err = errors.New("cap must be above zero")
					}
					return err
				}),
			huh.NewInput().
				Title("Number of students").
				Value(&studentsStr).
				Validate(func(s string) error {
					_, err := cli.ParsePositive(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewInput().
				Title("Markdown export file").
				Value(&exportFile),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled. Nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	cfg.Event.BudgetCap, _ = cli.ParseCost(capStr)
	cfg.Event.StudentCount, _ = cli.ParsePositive(studentsStr)
	cfg.Appearance.Theme = themeName
	if f := strings.TrimSpace(exportFile); f != "" {
		cfg.Export.File = f
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `partyplan setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
