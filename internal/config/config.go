// Package config provides configuration management for Tempo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/arpele/tempo/internal/domain"
)

// Config holds all configuration for the Tempo application.
type Config struct {
	Plan        PlanConfig        `mapstructure:"plan"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Theme       ThemeConfig       `mapstructure:"theme"`
	Storage     StorageConfig     `mapstructure:"storage"`
}

// PlanConfig holds the session plan: phase lengths and cycle count.
type PlanConfig struct {
	FocusMinutes int `mapstructure:"focus_minutes"`
	RelaxMinutes int `mapstructure:"relax_minutes"`
	Cycles       int `mapstructure:"cycles"`
}

// PreferencesConfig holds the user toggles.
type PreferencesConfig struct {
	AutoCycle     bool `mapstructure:"auto_cycle"`
	Sound         bool `mapstructure:"sound"`
	Notifications bool `mapstructure:"notifications"`
}

// ThemeConfig holds the tone colors used by the timer UI.
type ThemeConfig struct {
	ColorFocus   string `mapstructure:"color_focus"`
	ColorRelax   string `mapstructure:"color_relax"`
	ColorPaused  string `mapstructure:"color_paused"`
	ColorWaiting string `mapstructure:"color_waiting"`
	ColorReady   string `mapstructure:"color_ready"`
	ColorHelp    string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:   "#E05F5F",
		ColorRelax:   "#4ECDC4",
		ColorPaused:  "#6B7280",
		ColorWaiting: "#E0B35F",
		ColorReady:   "#A0AEC0",
		ColorHelp:    "#95A5A6",
	}
}

// ToneColor returns the theme color for a snapshot tone.
func (t ThemeConfig) ToneColor(tone string) string {
	switch tone {
	case "focus":
		return t.ColorFocus
	case "relax":
		return t.ColorRelax
	case "paused":
		return t.ColorPaused
	case "waiting":
		return t.ColorWaiting
	default:
		return t.ColorReady
	}
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Plan: PlanConfig{
			FocusMinutes: 25,
			RelaxMinutes: 5,
			Cycles:       4,
		},
		Preferences: PreferencesConfig{
			AutoCycle:     false,
			Sound:         true,
			Notifications: true,
		},
		Theme: DefaultThemeConfig(),
		Storage: StorageConfig{
			DataDir: "~/.tempo",
		},
	}
}

// GetPlan returns the configured plan as a domain value. Non-positive
// values are replaced with defaults here; the timer engine trusts its
// inputs and does no validation of its own.
func (c *Config) GetPlan() domain.Plan {
	plan := domain.Plan{
		FocusMinutes: c.Plan.FocusMinutes,
		RelaxMinutes: c.Plan.RelaxMinutes,
		Cycles:       c.Plan.Cycles,
	}
	defaults := domain.DefaultPlan()
	if plan.FocusMinutes <= 0 {
		plan.FocusMinutes = defaults.FocusMinutes
	}
	if plan.RelaxMinutes <= 0 {
		plan.RelaxMinutes = defaults.RelaxMinutes
	}
	if plan.Cycles <= 0 {
		plan.Cycles = defaults.Cycles
	}
	return plan
}

// GetPreferences returns the configured preferences as a domain value.
func (c *Config) GetPreferences() domain.Preferences {
	return domain.Preferences{
		AutoCycle:     c.Preferences.AutoCycle,
		Sound:         c.Preferences.Sound,
		Notifications: c.Preferences.Notifications,
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.tempo" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".tempo")
	}

	return &cfg, nil
}

// Reload re-reads the config file into the receiver in place, so
// components holding the pointer observe the new values.
func (c *Config) Reload() error {
	fresh, err := Load()
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("plan.focus_minutes", cfg.Plan.FocusMinutes)
	viper.Set("plan.relax_minutes", cfg.Plan.RelaxMinutes)
	viper.Set("plan.cycles", cfg.Plan.Cycles)
	viper.Set("preferences.auto_cycle", cfg.Preferences.AutoCycle)
	viper.Set("preferences.sound", cfg.Preferences.Sound)
	viper.Set("preferences.notifications", cfg.Preferences.Notifications)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_relax", cfg.Theme.ColorRelax)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_waiting", cfg.Theme.ColorWaiting)
	viper.Set("theme.color_ready", cfg.Theme.ColorReady)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tempo", "config.toml"), nil
}

// GetDBPath returns the path to the history database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tempo.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("plan.focus_minutes", 25)
	viper.SetDefault("plan.relax_minutes", 5)
	viper.SetDefault("plan.cycles", 4)
	viper.SetDefault("preferences.auto_cycle", false)
	viper.SetDefault("preferences.sound", true)
	viper.SetDefault("preferences.notifications", true)
	viper.SetDefault("storage.data_dir", "~/.tempo")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_focus", defaults.ColorFocus)
	viper.SetDefault("theme.color_relax", defaults.ColorRelax)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_waiting", defaults.ColorWaiting)
	viper.SetDefault("theme.color_ready", defaults.ColorReady)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
}
