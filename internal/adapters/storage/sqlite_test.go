package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpele/tempo/internal/domain"
)

func TestSaveAndFindRecent(t *testing.T) {
	store, err := NewMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	focus := domain.NewPhaseRecord(domain.PhaseFocus, 1500, time.Now().Add(-25*time.Minute), 1)
	focus.CompletedAt = time.Now().Add(-20 * time.Minute)
	focus.SetGitContext("main", "abc1234")
	require.NoError(t, store.History().Save(ctx, focus))

	relax := domain.NewPhaseRecord(domain.PhaseRelax, 300, time.Now().Add(-5*time.Minute), 1)
	relax.CompletedAt = time.Now().Add(-2 * time.Minute)
	require.NoError(t, store.History().Save(ctx, relax))

	records, err := store.History().FindRecent(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first
	assert.Equal(t, relax.ID, records[0].ID)
	assert.Equal(t, focus.ID, records[1].ID)
	assert.Equal(t, domain.PhaseFocus, records[1].Phase)
	assert.Equal(t, 1500, records[1].PlannedSeconds)
	assert.Equal(t, "main", records[1].GitBranch)
	assert.Equal(t, "abc1234", records[1].GitCommit)
	assert.Equal(t, 1, records[1].CycleOrdinal)
}

func TestFindRecent_ExcludesOldPhases(t *testing.T) {
	store, err := NewMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	old := domain.NewPhaseRecord(domain.PhaseFocus, 1500, time.Now().Add(-48*time.Hour), 1)
	old.CompletedAt = time.Now().Add(-47 * time.Hour)
	require.NoError(t, store.History().Save(ctx, old))

	records, err := store.History().FindRecent(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetDailyTotals(t *testing.T) {
	store, err := NewMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		rec := domain.NewPhaseRecord(domain.PhaseFocus, 1500, now.Add(-time.Hour), i+1)
		require.NoError(t, store.History().Save(ctx, rec))
	}
	relax := domain.NewPhaseRecord(domain.PhaseRelax, 300, now.Add(-time.Hour), 1)
	require.NoError(t, store.History().Save(ctx, relax))

	yesterday := domain.NewPhaseRecord(domain.PhaseFocus, 1500, now.Add(-30*time.Hour), 1)
	yesterday.CompletedAt = now.Add(-30 * time.Hour)
	require.NoError(t, store.History().Save(ctx, yesterday))

	totals, err := store.History().GetDailyTotals(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 3, totals.FocusPhases)
	assert.Equal(t, 1, totals.RelaxPhases)
	assert.Equal(t, 3*1500, totals.FocusSeconds)
	assert.Equal(t, 75*time.Minute, totals.FocusTime())
}

func TestRecordPhase_ImplementsRecorder(t *testing.T) {
	store, err := NewMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	rec := domain.NewPhaseRecord(domain.PhaseFocus, 60, time.Now(), 1)
	require.NoError(t, store.RecordPhase(ctx, rec))

	records, err := store.History().FindRecent(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
