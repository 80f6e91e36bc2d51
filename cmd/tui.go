package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/partyplan/internal/config"
	"github.com/theirongolddev/partyplan/internal/tui"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive planner",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Save failures during the session go to a log next to the database;
	// stderr is hidden behind the alt screen.
	path := dbPath(s.cfg)
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(path), "partyplan.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	app := tui.NewApp(tui.Options{
		Plan:       s.plan,
		Config:     s.cfg,
		Store:      s.store,
		DBPath:     path,
		LogOutput:  logFile,
		SaveConfig: saveSettings,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// saveSettings writes settings edited in the TUI on top of the config
// file, so --db never ends up in the file.
func saveSettings(edited config.Config) error {
	cfg, _ := config.Load()
	cfg.Event = edited.Event
	cfg.Appearance = edited.Appearance
	cfg.Export = edited.Export
	return config.Save(cfg)
}
