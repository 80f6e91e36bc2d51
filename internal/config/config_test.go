package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Event.BudgetCap != 30 {
		t.Errorf("BudgetCap = %v, want 30", cfg.Event.BudgetCap)
	}
	if cfg.Event.StudentCount != 24 {
		t.Errorf("StudentCount = %d, want 24", cfg.Event.StudentCount)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveToLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Event.BudgetCap = 45.5
	cfg.Event.StudentCount = 18
	cfg.Appearance.Theme = "chalkboard"
	cfg.Storage.DBPath = "/tmp/party.db"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != cfg {
		t.Fatalf("LoadFrom = %+v, want %+v", got, cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[event]\nbudget_cap = 50\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Event.BudgetCap != 50 {
		t.Errorf("BudgetCap = %v, want 50", cfg.Event.BudgetCap)
	}
	if cfg.Event.StudentCount != 24 {
		t.Errorf("StudentCount = %d, want default 24", cfg.Event.StudentCount)
	}
}

func TestLoadFrom_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[event\nbudget_cap = "), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Event.BudgetCap != 30 {
		t.Errorf("BudgetCap = %v, want defaults on error", cfg.Event.BudgetCap)
	}
}

func TestDBPath_EnvWins(t *testing.T) {
	t.Setenv("PARTYPLAN_DB", "/tmp/env.db")
	cfg := DefaultConfig()
	cfg.Storage.DBPath = "/tmp/cfg.db"
	if got := DBPath(cfg); got != "/tmp/env.db" {
		t.Fatalf("DBPath = %q, want /tmp/env.db", got)
	}
}

func TestDBPath_DefaultUnderDataDir(t *testing.T) {
	t.Setenv("PARTYPLAN_DB", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DBPath(DefaultConfig()); got != filepath.Join("/tmp/xdg", "partyplan", "plan.db") {
		t.Fatalf("DBPath = %q", got)
	}
}
