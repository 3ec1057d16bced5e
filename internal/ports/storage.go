package ports

import (
	"context"
	"time"

	"github.com/arpele/tempo/internal/domain"
)

// PhaseRecorder receives completed phases from the timer engine.
// Recording failures must never affect a state transition; the engine
// treats this call like a cue and ignores the error.
type PhaseRecorder interface {
	RecordPhase(ctx context.Context, record *domain.PhaseRecord) error
}

// HistoryRepository defines the interface for phase history persistence.
// This is a driven port (implemented by adapters).
type HistoryRepository interface {
	// Save persists a completed phase.
	Save(ctx context.Context, record *domain.PhaseRecord) error

	// FindRecent retrieves phases completed since the given time, most
	// recent first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.PhaseRecord, error)

	// GetDailyTotals returns aggregated totals for a specific date.
	GetDailyTotals(ctx context.Context, date time.Time) (*domain.DailyTotals, error)
}

// Storage is the combined driven port for persistence.
type Storage interface {
	PhaseRecorder

	// History provides access to phase history operations.
	History() HistoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
