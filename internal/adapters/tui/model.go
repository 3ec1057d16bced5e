// Package tui provides the terminal user interface for the timer using
// the Bubbletea framework. The model owns no timer state of its own: it
// renders whatever snapshot the engine last emitted.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpele/tempo/internal/config"
	"github.com/arpele/tempo/internal/domain"
)

// snapshotMsg carries a timer update from the engine into the UI loop.
type snapshotMsg domain.Snapshot

// Controls are the intent callbacks into the timer engine. Each call is
// synchronous and triggers at most one snapshot emission.
type Controls struct {
	Primary func()
	Reset   func()
	Apply   func()
}

// Model represents the TUI state.
type Model struct {
	snap     domain.Snapshot
	message  string
	progress progress.Model
	theme    config.ThemeConfig
	controls Controls
	width    int
	height   int
	quitting bool
}

// NewModel creates a new TUI model from an initial snapshot.
func NewModel(initial domain.Snapshot, theme config.ThemeConfig, controls Controls) Model {
	return Model{
		snap: initial,
		progress: progress.New(
			progress.WithSolidFill(theme.ToneColor(initial.Tone)),
			progress.WithoutPercentage(),
		),
		theme:    theme,
		controls: controls,
	}
}

// Init initializes the TUI. The engine pushes updates; no tick command is
// needed here.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clampProgressWidth(msg.Width)
		return m, nil

	case snapshotMsg:
		snap := domain.Snapshot(msg)
		if snap.Message != "" {
			m.message = snap.Message
		} else if snap.Status != m.snap.Status {
			m.message = ""
		}
		m.snap = snap
		m.progress = progress.New(
			progress.WithSolidFill(m.theme.ToneColor(snap.Tone)),
			progress.WithoutPercentage(),
		)
		m.progress.Width = clampProgressWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			if m.controls.Primary != nil {
				m.controls.Primary()
			}
			return m, nil
		case "r":
			if m.controls.Reset != nil {
				m.controls.Reset()
			}
			return m, nil
		case "a":
			if m.controls.Apply != nil {
				m.controls.Apply()
			}
			return m, nil
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func clampProgressWidth(width int) int {
	w := width - 8
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}
