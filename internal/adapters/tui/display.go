package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpele/tempo/internal/config"
	"github.com/arpele/tempo/internal/domain"
	"github.com/arpele/tempo/internal/engine"
)

// Display runs the fullscreen timer UI on top of the engine: it subscribes
// to timer updates, forwards key presses as intents, and blocks until the
// user quits or the context is cancelled.
type Display struct {
	eng     *engine.Engine
	cfg     *config.Config
	program *tea.Program
}

// NewDisplay creates a display for the given engine and configuration.
func NewDisplay(eng *engine.Engine, cfg *config.Config) *Display {
	return &Display{eng: eng, cfg: cfg}
}

// Run starts the UI and blocks until completion. The engine is stopped on
// the way out so no ticker outlives the screen.
func (d *Display) Run(ctx context.Context) error {
	controls := Controls{
		Primary: d.eng.PerformPrimaryAction,
		Reset:   d.eng.Reset,
		Apply: func() {
			// Re-read settings from disk, then hand the new plan to the
			// engine as a silent refresh.
			if err := d.cfg.Reload(); err != nil {
				return
			}
			d.eng.ApplyPlan()
		},
	}

	m := NewModel(d.eng.Snapshot(), d.cfg.Theme, controls)
	d.program = tea.NewProgram(m, tea.WithAltScreen())

	d.eng.Subscribe(func(s domain.Snapshot) {
		d.program.Send(snapshotMsg(s))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			d.program.Quit()
		case <-done:
		}
	}()

	_, err := d.program.Run()
	d.eng.Stop()
	return err
}
