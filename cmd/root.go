package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/partyplan/internal/config"
	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagCap   float64
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:          "partyplan",
	Short:        "Classroom party planner",
	Long:         "Plan a classroom party: shopping list, budget cap, suggestions, and a 60-minute schedule.",
	RunE:         runSummary,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Plan database path (default $XDG_DATA_HOME/partyplan/plan.db)")
	rootCmd.PersistentFlags().Float64Var(&flagCap, "cap", 0, "Budget cap in dollars (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// session is the shared state every plan command works on.
type session struct {
	cfg   config.Config
	store *store.Store
	plan  model.Plan
}

// loadConfig reads the config and applies flag overrides. A broken config
// file is reported and the defaults are used.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warnf("  %v (using defaults)\n", err)
	}
	if flagCap > 0 {
		cfg.Event.BudgetCap = flagCap
	}
	if flagDB != "" {
		cfg.Storage.DBPath = flagDB
	}
	return cfg
}

// dbPath resolves the database location, letting --db win over the
// environment.
func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return config.DBPath(cfg)
}

// openSession loads config and the saved plan. The caller must Close it.
func openSession() (*session, error) {
	cfg := loadConfig()

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, err
	}

	res, err := st.LoadPlan()
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	if len(res.Corrupt) > 0 {
		warnf("  Ignored unreadable saved data: %s\n", strings.Join(res.Corrupt, ", "))
	}

	return &session{cfg: cfg, store: st, plan: res.Plan}, nil
}

// save persists the session plan.
func (s *session) save() error {
	n, err := s.store.SavePlan(s.plan)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	progressf("  Saved (%d keys updated)\n", n)
	return nil
}

func (s *session) Close() {
	_ = s.store.Close()
}

// progressf writes a progress line to stderr unless --quiet is set.
func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// warnf writes a warning to stderr. Warnings ignore --quiet.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
