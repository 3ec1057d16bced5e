package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arpele/tempo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the timer configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it back to the config file.

Supported keys:
  plan.focus_minutes            Length of a focus phase in minutes
  plan.relax_minutes            Length of a relax phase in minutes
  plan.cycles                   Number of focus/relax cycles per plan
  preferences.auto_cycle        Start the next focus phase automatically
  preferences.sound             Play audio cues
  preferences.notifications     Show desktop notifications`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfigValue(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s\n\n", path)
	fmt.Printf("[plan]\n")
	fmt.Printf("  focus_minutes = %d\n", appConfig.Plan.FocusMinutes)
	fmt.Printf("  relax_minutes = %d\n", appConfig.Plan.RelaxMinutes)
	fmt.Printf("  cycles        = %d\n\n", appConfig.Plan.Cycles)
	fmt.Printf("[preferences]\n")
	fmt.Printf("  auto_cycle    = %t\n", appConfig.Preferences.AutoCycle)
	fmt.Printf("  sound         = %t\n", appConfig.Preferences.Sound)
	fmt.Printf("  notifications = %t\n", appConfig.Preferences.Notifications)
	return nil
}

func setConfigValue(key, value string) error {
	switch key {
	case "plan.focus_minutes", "plan.relax_minutes", "plan.cycles":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
		switch key {
		case "plan.focus_minutes":
			appConfig.Plan.FocusMinutes = n
		case "plan.relax_minutes":
			appConfig.Plan.RelaxMinutes = n
		case "plan.cycles":
			appConfig.Plan.Cycles = n
		}
	case "preferences.auto_cycle", "preferences.sound", "preferences.notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		switch key {
		case "preferences.auto_cycle":
			appConfig.Preferences.AutoCycle = b
		case "preferences.sound":
			appConfig.Preferences.Sound = b
		case "preferences.notifications":
			appConfig.Preferences.Notifications = b
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Save(appConfig); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
