package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Solver.TeamSize != 5 {
		t.Errorf("TeamSize = %d, want 5", cfg.Solver.TeamSize)
	}
	if cfg.Solver.RarityExponent != 100 {
		t.Errorf("RarityExponent = %v, want 100", cfg.Solver.RarityExponent)
	}
	if cfg.Solver.MaxResults != 0 {
		t.Errorf("MaxResults = %d, want 0 (unlimited)", cfg.Solver.MaxResults)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("DefaultLimit = %d, want 24", cfg.CLI.DefaultLimit)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Solver.TeamSize = 4
	cfg.Solver.RarityExponent = 12.5
	cfg.Roster.Path = "names.txt"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Solver.TeamSize != 4 {
		t.Errorf("TeamSize = %d, want 4", loaded.Solver.TeamSize)
	}
	if loaded.Solver.RarityExponent != 12.5 {
		t.Errorf("RarityExponent = %v, want 12.5", loaded.Solver.RarityExponent)
	}
	if loaded.Roster.Path != "names.txt" {
		t.Errorf("Roster.Path = %q, want names.txt", loaded.Roster.Path)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	// Missing sections fall back to defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[solver]\nteam_size = 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Solver.TeamSize != 3 {
		t.Errorf("TeamSize = %d, want 3", cfg.Solver.TeamSize)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("DefaultLimit = %d, want default 24", cfg.CLI.DefaultLimit)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Solver.TeamSize != 5 {
		t.Errorf("TeamSize = %d, want default 5", cfg.Solver.TeamSize)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
}
