package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arpele/tempo/internal/domain"
	"github.com/arpele/tempo/internal/ports"
)

// historyRepository implements ports.HistoryRepository using SQLite.
type historyRepository struct {
	db *sql.DB
}

// newHistoryRepository creates a new history repository.
func newHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

// Save persists a completed phase.
func (r *historyRepository) Save(ctx context.Context, record *domain.PhaseRecord) error {
	query := `
		INSERT INTO phases (
			id, phase, planned_seconds, started_at, completed_at,
			cycle_ordinal, git_branch, git_commit
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Phase),
		record.PlannedSeconds,
		record.StartedAt,
		record.CompletedAt,
		record.CycleOrdinal,
		record.GitBranch,
		record.GitCommit,
	)
	if err != nil {
		return fmt.Errorf("failed to save phase record: %w", err)
	}

	return nil
}

// FindRecent retrieves phases completed since the given time, most recent
// first.
func (r *historyRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.PhaseRecord, error) {
	query := `
		SELECT id, phase, planned_seconds, started_at, completed_at,
			cycle_ordinal, git_branch, git_commit
		FROM phases
		WHERE completed_at >= ?
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query phases: %w", err)
	}
	defer rows.Close()

	var records []*domain.PhaseRecord
	for rows.Next() {
		record, err := scanPhase(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetDailyTotals returns aggregated totals for a specific date.
func (r *historyRepository) GetDailyTotals(ctx context.Context, date time.Time) (*domain.DailyTotals, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(CASE WHEN phase = 'focus' THEN 1 END),
			COUNT(CASE WHEN phase = 'relax' THEN 1 END),
			COALESCE(SUM(CASE WHEN phase = 'focus' THEN planned_seconds END), 0)
		FROM phases
		WHERE completed_at >= ? AND completed_at < ?
	`

	totals := &domain.DailyTotals{Date: dayStart}
	err := r.db.QueryRowContext(ctx, query, dayStart, dayEnd).Scan(
		&totals.FocusPhases,
		&totals.RelaxPhases,
		&totals.FocusSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily totals: %w", err)
	}

	return totals, nil
}

// scanPhase reads one phase record from a row set.
func scanPhase(rows *sql.Rows) (*domain.PhaseRecord, error) {
	var record domain.PhaseRecord
	var phase string
	var branch, commit sql.NullString

	err := rows.Scan(
		&record.ID,
		&phase,
		&record.PlannedSeconds,
		&record.StartedAt,
		&record.CompletedAt,
		&record.CycleOrdinal,
		&branch,
		&commit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan phase record: %w", err)
	}

	record.Phase = domain.Phase(phase)
	record.GitBranch = branch.String
	record.GitCommit = commit.String
	return &record, nil
}
