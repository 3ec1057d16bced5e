package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Plan.FocusMinutes != 25 {
		t.Errorf("FocusMinutes = %v, want 25", cfg.Plan.FocusMinutes)
	}
	if cfg.Plan.RelaxMinutes != 5 {
		t.Errorf("RelaxMinutes = %v, want 5", cfg.Plan.RelaxMinutes)
	}
	if cfg.Plan.Cycles != 4 {
		t.Errorf("Cycles = %v, want 4", cfg.Plan.Cycles)
	}
	if cfg.Preferences.AutoCycle {
		t.Error("AutoCycle should default to false")
	}
	if !cfg.Preferences.Sound {
		t.Error("Sound should default to true")
	}
}

func TestGetPlan_NormalizesInvalidValues(t *testing.T) {
	cfg := &Config{Plan: PlanConfig{FocusMinutes: -3, RelaxMinutes: 0, Cycles: 2}}

	plan := cfg.GetPlan()
	if plan.FocusMinutes != 25 {
		t.Errorf("FocusMinutes = %v, want default 25", plan.FocusMinutes)
	}
	if plan.RelaxMinutes != 5 {
		t.Errorf("RelaxMinutes = %v, want default 5", plan.RelaxMinutes)
	}
	if plan.Cycles != 2 {
		t.Errorf("Cycles = %v, want 2", plan.Cycles)
	}
}

func TestToneColor(t *testing.T) {
	theme := DefaultThemeConfig()

	tests := []struct {
		tone string
		want string
	}{
		{"focus", theme.ColorFocus},
		{"relax", theme.ColorRelax},
		{"paused", theme.ColorPaused},
		{"waiting", theme.ColorWaiting},
		{"ready", theme.ColorReady},
		{"unknown", theme.ColorReady},
	}

	for _, tt := range tests {
		if got := theme.ToneColor(tt.tone); got != tt.want {
			t.Errorf("ToneColor(%q) = %q, want %q", tt.tone, got, tt.want)
		}
	}
}

func TestLoad_CreatesDefaultConfigOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Plan.FocusMinutes != 25 {
		t.Errorf("FocusMinutes = %v, want 25", cfg.Plan.FocusMinutes)
	}
	if cfg.Storage.DataDir != filepath.Join(home, ".tempo") {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, filepath.Join(home, ".tempo"))
	}
}

func TestSaveAndReload(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg.Plan.FocusMinutes = 50
	cfg.Preferences.AutoCycle = true
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cfg.Plan.FocusMinutes != 50 {
		t.Errorf("FocusMinutes after reload = %v, want 50", cfg.Plan.FocusMinutes)
	}
	if !cfg.Preferences.AutoCycle {
		t.Error("AutoCycle after reload = false, want true")
	}
}
