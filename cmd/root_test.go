package cmd

import (
	"testing"
	"time"

	"github.com/arpele/tempo/internal/config"
)

func TestRootCmd_Shape(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "tempo" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "tempo")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("--db flag should be registered")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{
		"history": false,
		"stats":   false,
		"config":  false,
		"reset":   false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q should be registered", name)
		}
	}
}

func TestFormatFocusTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h00m"},
		{125, "2h05m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatFocusTime(time.Duration(tt.minutes) * time.Minute)
			if got != tt.want {
				t.Errorf("formatFocusTime(%d min) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestSetConfigValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	appConfig = config.DefaultConfig()

	if err := setConfigValue("plan.focus_minutes", "50"); err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}
	if appConfig.Plan.FocusMinutes != 50 {
		t.Errorf("FocusMinutes = %d, want 50", appConfig.Plan.FocusMinutes)
	}

	if err := setConfigValue("preferences.auto_cycle", "true"); err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}
	if !appConfig.Preferences.AutoCycle {
		t.Error("AutoCycle = false, want true")
	}

	if err := setConfigValue("plan.cycles", "zero"); err == nil {
		t.Error("expected error for non-numeric cycle count")
	}
	if err := setConfigValue("plan.cycles", "-1"); err == nil {
		t.Error("expected error for negative cycle count")
	}
	if err := setConfigValue("nope.key", "1"); err == nil {
		t.Error("expected error for unknown key")
	}
}
