package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.General.DefaultPeriod != "month" {
		t.Errorf("DefaultPeriod = %q, want month", cfg.General.DefaultPeriod)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.General.DBPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true in empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load with no file = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.General.DBPath = "/tmp/custom.db"
	cfg.General.DefaultPeriod = "week"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Appearance.Theme = "catppuccin-mocha"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultPeriod != "month" {
		t.Errorf("DefaultPeriod = %q, want default month", got.General.DefaultPeriod)
	}
	if got.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("Theme = %q, want catppuccin-mocha", got.Appearance.Theme)
	}
}

func TestDirRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if got := Dir(); got != filepath.Join(dir, "outlay") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join(dir, "outlay"))
	}
	if got := Path(); got != filepath.Join(dir, "outlay", "config.toml") {
		t.Errorf("Path() = %q", got)
	}
}

func TestDBPath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	cfg := Default()
	if got := DBPath(cfg); got != filepath.Join(data, "outlay", "outlay.db") {
		t.Errorf("DBPath = %q, want XDG data default", got)
	}

	cfg.General.DBPath = "/srv/expenses.db"
	if got := DBPath(cfg); got != "/srv/expenses.db" {
		t.Errorf("DBPath = %q, want configured override", got)
	}
}
