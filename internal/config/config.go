// Package config loads and saves the partyplan TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all partyplan configuration.
type Config struct {
	Event      EventConfig      `toml:"event"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
}

// EventConfig describes the party being planned.
type EventConfig struct {
	BudgetCap    float64 `toml:"budget_cap"`
	StudentCount int     `toml:"student_count"`
}

// StorageConfig holds local persistence settings.
type StorageConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig holds Markdown export defaults.
type ExportConfig struct {
	File string `toml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Event: EventConfig{
			BudgetCap:    30,
			StudentCount: 24,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Export: ExportConfig{
			File: "party-plan.md",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "partyplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "partyplan")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the plan database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "partyplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "partyplan")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
// Zero or missing event values fall back to their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	def := DefaultConfig()
	if cfg.Event.BudgetCap <= 0 {
		cfg.Event.BudgetCap = def.Event.BudgetCap
	}
	if cfg.Event.StudentCount <= 0 {
		cfg.Event.StudentCount = def.Event.StudentCount
	}
	if cfg.Export.File == "" {
		cfg.Export.File = def.Export.File
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DBPath returns the plan database path: PARTYPLAN_DB, then the config
// value, then the default under DataDir.
func DBPath(cfg Config) string {
	if p := os.Getenv("PARTYPLAN_DB"); p != "" {
		return p
	}
	if cfg.Storage.DBPath != "" {
		return cfg.Storage.DBPath
	}
	return filepath.Join(DataDir(), "plan.db")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
