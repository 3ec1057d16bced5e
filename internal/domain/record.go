package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhaseRecord captures one completed focus or relax phase for history.
// Live timer state is never persisted; only finished phases are.
type PhaseRecord struct {
	ID             string
	Phase          Phase
	PlannedSeconds int
	StartedAt      time.Time
	CompletedAt    time.Time
	CycleOrdinal   int
	GitBranch      string
	GitCommit      string
}

// NewPhaseRecord creates a record for a phase that just completed.
// cycleOrdinal is the 1-based position of the cycle within the plan.
func NewPhaseRecord(phase Phase, plannedSeconds int, startedAt time.Time, cycleOrdinal int) *PhaseRecord {
	return &PhaseRecord{
		ID:             uuid.New().String(),
		Phase:          phase,
		PlannedSeconds: plannedSeconds,
		StartedAt:      startedAt,
		CompletedAt:    time.Now(),
		CycleOrdinal:   cycleOrdinal,
	}
}

// SetGitContext stamps the record with the git surroundings of the session.
func (r *PhaseRecord) SetGitContext(branch, commit string) {
	r.GitBranch = branch
	r.GitCommit = commit
}

// DailyTotals aggregates completed phases for one day.
type DailyTotals struct {
	Date         time.Time
	FocusPhases  int
	RelaxPhases  int
	FocusSeconds int
}

// FocusTime returns the total focus time as a duration.
func (t DailyTotals) FocusTime() time.Duration {
	return time.Duration(t.FocusSeconds) * time.Second
}
