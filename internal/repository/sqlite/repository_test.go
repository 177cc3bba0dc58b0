package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepository creates an in-memory repository for testing
func setupTestRepository(t *testing.T) *SQLiteRepository {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadTasks_NoPriorData(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	records, err := repo.LoadTasks(ctx)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveTasks_RoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	completedAt := "2024-03-01T10:30:00Z"
	saved := []TaskRecord{
		{
			ID:           "5f9b3a1c-0000-0000-0000-000000000001",
			Name:         "Meditate",
			IsDailyHabit: true,
			IsCompleted:  true,
			DueDate:      "2024-03-01T08:00:00Z",
			CompletedAt:  &completedAt,
		},
		{
			ID:      "5f9b3a1c-0000-0000-0000-000000000002",
			Name:    "Buy milk",
			DueDate: "2024-03-02T08:00:00Z",
		},
	}

	require.NoError(t, repo.SaveTasks(ctx, saved))

	loaded, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveTasks_OverwritesPreviousSnapshot(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	first := []TaskRecord{{ID: "a", Name: "One", DueDate: "2024-03-01T00:00:00Z"}}
	second := []TaskRecord{{ID: "b", Name: "Two", DueDate: "2024-03-02T00:00:00Z"}}

	require.NoError(t, repo.SaveTasks(ctx, first))
	require.NoError(t, repo.SaveTasks(ctx, second))

	loaded, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestSaveTasks_NilSnapshotPersistsEmptyArray(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTasks(ctx, nil))

	loaded, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadTasks_CorruptSnapshotIsNoPriorData(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.setState(ctx, stateKeyTasks, "{definitely not json"))

	records, err := repo.LoadTasks(ctx)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestLastStackedDate(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	day, err := repo.LastStackedDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", day, "marker should be empty before stacking ever runs")

	require.NoError(t, repo.SetLastStackedDate(ctx, "2024-03-01"))

	day, err = repo.LastStackedDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", day)

	// Marker is overwritten, not accumulated
	require.NoError(t, repo.SetLastStackedDate(ctx, "2024-03-02"))

	day, err = repo.LastStackedDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", day)
}

func TestStateKeysAreIndependent(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetLastStackedDate(ctx, "2024-03-01"))
	require.NoError(t, repo.SaveTasks(ctx, []TaskRecord{{ID: "a", Name: "One", DueDate: "2024-03-01T00:00:00Z"}}))

	day, err := repo.LastStackedDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", day)

	records, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
