package domain

import "fmt"

// Phase is the active segment type within a running session.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseRelax Phase = "relax"
)

// Status represents the current state of the timer.
type Status string

const (
	StatusReady   Status = "ready"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusWaiting Status = "waiting"
)

// TimerState is the mutable state owned exclusively by the timer engine.
// Phase is meaningful while Running or Paused; otherwise it names the next
// phase to run and is always Focus.
type TimerState struct {
	Status           Status
	Phase            Phase
	RemainingSeconds int
	DurationSeconds  int
	CyclesLeft       int
	TotalCycles      int
}

// IsRunning reports whether a ticking mechanism should be active.
func (s TimerState) IsRunning() bool {
	return s.Status == StatusRunning
}

// Reinit resets the state in place from the given plan: Ready, Focus next,
// full cycle count, focus duration preloaded.
func (s *TimerState) Reinit(plan Plan) {
	s.Status = StatusReady
	s.Phase = PhaseFocus
	s.DurationSeconds = plan.FocusSeconds()
	s.RemainingSeconds = s.DurationSeconds
	s.CyclesLeft = plan.Cycles
	s.TotalCycles = plan.Cycles
}

// StatusLabel returns the headline label for the current state.
func (s TimerState) StatusLabel() string {
	switch s.Status {
	case StatusReady:
		return "Ready"
	case StatusWaiting:
		return "Waiting"
	case StatusPaused:
		return "Paused"
	}
	if s.Phase == PhaseRelax {
		return "Relax"
	}
	return "Focus"
}

// PrimaryLabel returns the caption for the primary action.
func (s TimerState) PrimaryLabel() string {
	switch s.Status {
	case StatusRunning:
		return "Pause"
	case StatusPaused:
		return "Resume"
	case StatusWaiting:
		return "Continue"
	default:
		return "Start"
	}
}

// Tone is the styling hint derived from status and phase.
func (s TimerState) Tone() string {
	switch s.Status {
	case StatusPaused:
		return "paused"
	case StatusWaiting:
		return "waiting"
	case StatusReady:
		return "ready"
	}
	return string(s.Phase)
}

// TotalRemainingSeconds sums all time left in the plan. It reads live plan
// values rather than the duration snapshot taken at phase start, so a plan
// edit shifts the estimate even while the active phase keeps its original
// length.
func (s TimerState) TotalRemainingSeconds(plan Plan) int {
	futureCycles := s.CyclesLeft - 1
	if futureCycles < 0 {
		futureCycles = 0
	}
	switch {
	case s.Status == StatusReady:
		return s.CyclesLeft * plan.CycleSeconds()
	case s.Phase == PhaseFocus:
		return s.RemainingSeconds + plan.RelaxSeconds() + futureCycles*plan.CycleSeconds()
	default:
		return s.RemainingSeconds + futureCycles*plan.CycleSeconds()
	}
}

// Snapshot captures the full timer state for observers, derived fields
// included. Snapshots are value copies; observers never see live state.
type Snapshot struct {
	Status                Status
	Phase                 Phase
	RemainingSeconds      int
	DurationSeconds       int
	CyclesLeft            int
	TotalCycles           int
	IsRunning             bool
	StatusLabel           string
	PrimaryLabel          string
	Tone                  string
	TotalRemainingSeconds int
	Message               string
}

// Progress returns phase completion from 0.0 to 1.0.
func (s Snapshot) Progress() float64 {
	if s.DurationSeconds == 0 {
		return 0
	}
	elapsed := s.DurationSeconds - s.RemainingSeconds
	return float64(elapsed) / float64(s.DurationSeconds)
}

// FormatClock renders a second count as MM:SS, or H:MM:SS above an hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
