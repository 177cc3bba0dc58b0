package api

import (
	"context"
	"testing"
	"time"

	"momentum/internal/errors"
	"momentum/internal/habit"
	"momentum/internal/repository/sqlite"
	"momentum/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAPI creates an API over in-memory storage
func setupTestAPI(t *testing.T) API {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	st := store.New(repo)
	st.Load(context.Background())
	return New(st, habit.NewStacker(st, repo))
}

func TestAddToggleList(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()
	today := time.Now()

	added, err := a.AddTask(ctx, "Buy milk", false, today)
	require.NoError(t, err)
	require.NotNil(t, added)

	require.Len(t, a.TasksForDate(today), 1)

	require.NoError(t, a.ToggleTask(ctx, added.ID))

	assert.Empty(t, a.TasksForDate(today), "completed tasks leave the day list")
	completed := a.CompletedTasks()
	require.Len(t, completed, 1)
	assert.Equal(t, added.ID, completed[0].ID)
}

func TestResolveTaskID(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	added, err := a.AddTask(ctx, "Buy milk", false, time.Now())
	require.NoError(t, err)

	t.Run("full id resolves", func(t *testing.T) {
		id, err := a.ResolveTaskID(added.ID.String())
		require.NoError(t, err)
		assert.Equal(t, added.ID, id)
	})

	t.Run("short prefix resolves", func(t *testing.T) {
		id, err := a.ResolveTaskID(added.ID.String()[:8])
		require.NoError(t, err)
		assert.Equal(t, added.ID, id)
	})

	t.Run("prefix matching is case-insensitive", func(t *testing.T) {
		// uuid renders lowercase; users paste uppercase from anywhere.
		upper := []byte(added.ID.String()[:8])
		for i, c := range upper {
			if c >= 'a' && c <= 'f' {
				upper[i] = c - 32
			}
		}
		id, err := a.ResolveTaskID(string(upper))
		require.NoError(t, err)
		assert.Equal(t, added.ID, id)
	})

	t.Run("unknown prefix is not found", func(t *testing.T) {
		// No uuid starts with a non-hex character.
		_, err := a.ResolveTaskID("zzzz")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("empty prefix is invalid input", func(t *testing.T) {
		_, err := a.ResolveTaskID("   ")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestResolveTaskID_AmbiguousPrefix(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	// With 16 possible leading hex digits, 17 tasks guarantee at least
	// two ids sharing a first character.
	counts := make(map[string]int)
	for i := 0; i < 17; i++ {
		added, err := a.AddTask(ctx, "Task", false, time.Now())
		require.NoError(t, err)
		counts[added.ID.String()[:1]]++
	}

	for prefix, n := range counts {
		if n < 2 {
			continue
		}
		_, err := a.ResolveTaskID(prefix)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
		return
	}
	t.Fatal("expected at least one shared one-character prefix")
}

func TestStackDailyHabits_DelegatesToStacker(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	_, err := a.AddTask(ctx, "Meditate", true, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)

	created, err := a.StackDailyHabits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = a.StackDailyHabits(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestGroupedByDay(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	mar1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	mar2 := time.Date(2024, 3, 2, 8, 0, 0, 0, time.Local)

	for _, due := range []time.Time{mar1, mar1, mar2} {
		_, err := a.AddTask(ctx, "Task", false, due)
		require.NoError(t, err)
	}

	groups := a.GroupedByDay()
	require.Len(t, groups, 2)
	assert.Len(t, groups["2024-03-01"], 2)
	assert.Len(t, groups["2024-03-02"], 1)
}
