package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arpele/tempo/internal/config"
	"github.com/arpele/tempo/internal/domain"
)

func readySnapshot() domain.Snapshot {
	return domain.Snapshot{
		Status:                domain.StatusReady,
		Phase:                 domain.PhaseFocus,
		RemainingSeconds:      1500,
		DurationSeconds:       1500,
		CyclesLeft:            4,
		TotalCycles:           4,
		StatusLabel:           "Ready",
		PrimaryLabel:          "Start",
		Tone:                  "ready",
		TotalRemainingSeconds: 7200,
	}
}

func TestUpdate_SnapshotReplacesState(t *testing.T) {
	m := NewModel(readySnapshot(), config.DefaultThemeConfig(), Controls{})

	snap := readySnapshot()
	snap.Status = domain.StatusRunning
	snap.StatusLabel = "Focus"
	snap.Tone = "focus"
	snap.RemainingSeconds = 1499
	snap.Message = "Focus started"

	updated, _ := m.Update(snapshotMsg(snap))
	got := updated.(Model)

	if got.snap.RemainingSeconds != 1499 {
		t.Errorf("RemainingSeconds = %v, want 1499", got.snap.RemainingSeconds)
	}
	if got.message != "Focus started" {
		t.Errorf("message = %q, want %q", got.message, "Focus started")
	}
}

func TestUpdate_MessagePersistsAcrossTicks(t *testing.T) {
	m := NewModel(readySnapshot(), config.DefaultThemeConfig(), Controls{})

	started := readySnapshot()
	started.Status = domain.StatusRunning
	started.Message = "Focus started"
	updated, _ := m.Update(snapshotMsg(started))
	m = updated.(Model)

	// A plain tick carries no message; the transition message stays up.
	tick := started
	tick.Message = ""
	tick.RemainingSeconds--
	updated, _ = m.Update(snapshotMsg(tick))
	m = updated.(Model)

	if m.message != "Focus started" {
		t.Errorf("message after tick = %q, want %q", m.message, "Focus started")
	}

	// A status change with no message clears it.
	reset := readySnapshot()
	updated, _ = m.Update(snapshotMsg(reset))
	m = updated.(Model)

	if m.message != "" {
		t.Errorf("message after silent status change = %q, want empty", m.message)
	}
}

func TestUpdate_KeysInvokeControls(t *testing.T) {
	var primary, reset, apply int
	controls := Controls{
		Primary: func() { primary++ },
		Reset:   func() { reset++ },
		Apply:   func() { apply++ },
	}
	m := NewModel(readySnapshot(), config.DefaultThemeConfig(), controls)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if primary != 1 {
		t.Errorf("primary calls = %d, want 1", primary)
	}
	if reset != 1 {
		t.Errorf("reset calls = %d, want 1", reset)
	}
	if apply != 1 {
		t.Errorf("apply calls = %d, want 1", apply)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := NewModel(readySnapshot(), config.DefaultThemeConfig(), Controls{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !updated.(Model).quitting {
		t.Error("quitting = false, want true")
	}
}

func TestView_ContainsCycleSummary(t *testing.T) {
	m := NewModel(readySnapshot(), config.DefaultThemeConfig(), Controls{})

	view := m.View()
	if !strings.Contains(view, "Cycle 1 of 4") {
		t.Errorf("View() missing cycle summary:\n%s", view)
	}
	if !strings.Contains(view, "Ready") {
		t.Errorf("View() missing status label:\n%s", view)
	}
}

func TestRenderBigClock_NarrowFallback(t *testing.T) {
	out := renderBigClock("25:00", lipgloss.Color("#E05F5F"), 20)
	if strings.Count(out, "\n") != 0 {
		t.Errorf("narrow render should be a single line, got:\n%s", out)
	}

	out = renderBigClock("25:00", lipgloss.Color("#E05F5F"), 80)
	if strings.Count(out, "\n") != 4 {
		t.Errorf("wide render should span 5 lines, got:\n%s", out)
	}
}
