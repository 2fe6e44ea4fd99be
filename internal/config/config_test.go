package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SLATE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("llm.provider = %q, want %q", cfg.LLM.Provider, "gemini")
	}
	if !cfg.UI.ReorderEnabled {
		t.Error("ui.reorder_enabled should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Database.Path == "" {
		t.Error("database.path should have a default")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SLATE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("SLATE_LLM_PROVIDER", "openai")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("llm.provider = %q, want env override %q", cfg.LLM.Provider, "openai")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SLATE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.UI.ReorderEnabled = false
	cfg.UI.DateFormat = "2006-01-02"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing after Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.ReorderEnabled {
		t.Error("ui.reorder_enabled should persist as false")
	}
	if got.UI.DateFormat != "2006-01-02" {
		t.Errorf("ui.date_format = %q, want %q", got.UI.DateFormat, "2006-01-02")
	}
}
