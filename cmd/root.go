// Package cmd provides the CLI commands for the Tempo application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arpele/tempo/internal/adapters/git"
	"github.com/arpele/tempo/internal/adapters/sound"
	"github.com/arpele/tempo/internal/adapters/storage"
	"github.com/arpele/tempo/internal/adapters/tui"
	"github.com/arpele/tempo/internal/config"
	"github.com/arpele/tempo/internal/domain"
	"github.com/arpele/tempo/internal/engine"
	"github.com/arpele/tempo/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	dbPath string

	// Global dependencies
	appConfig      *config.Config
	storageAdapter ports.Storage
	workContext    *ports.WorkContext
)

// planSource adapts the config to the engine's PlanSource, so the engine
// reads live values after a reload.
type planSource struct {
	cfg *config.Config
}

func (s planSource) Plan() domain.Plan               { return s.cfg.GetPlan() }
func (s planSource) Preferences() domain.Preferences { return s.cfg.GetPreferences() }

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Tempo - a focus/relax cycle timer for the terminal",
	Long: `Tempo is a terminal timer that alternates focus and relax phases
through a configurable plan of cycles, with audio cues and a history of
completed phases.

Run "tempo" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the history database (default: ~/.tempo/tempo.db)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Tempo\nVersion: {{.Version}}\n")
}

// initializeServices sets up configuration, storage, and git context.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	if dbPath == "" {
		dbPath = config.GetDBPath(appConfig)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	storageAdapter, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Best effort: history is still useful without git context.
	detector := git.NewDetector()
	if detector.IsAvailable() {
		cwd, _ := os.Getwd()
		workContext, _ = detector.Detect(context.Background(), cwd)
	}

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runTimer wires the engine to its collaborators and opens the timer UI.
func runTimer(cmd *cobra.Command, args []string) error {
	opts := []engine.Option{engine.WithRecorder(storageAdapter)}
	if workContext != nil {
		opts = append(opts, engine.WithWorkContext(workContext))
	}

	eng := engine.New(planSource{cfg: appConfig}, sound.New(appConfig), opts...)
	display := tui.NewDisplay(eng, appConfig)

	return display.Run(setupSignalHandler())
}
