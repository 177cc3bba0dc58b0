package domain

import (
	"testing"
	"time"

	"momentum/internal/repository/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()

	completedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	task := Task{
		ID:           uuid.New(),
		Name:         "Meditate",
		IsDailyHabit: true,
		IsCompleted:  true,
		DueDate:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		CompletedAt:  &completedAt,
	}

	record := mapper.ToRecord(task)
	assert.Equal(t, task.ID.String(), record.ID)
	assert.Equal(t, "2024-03-01T08:00:00Z", record.DueDate)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, "2024-03-01T10:30:00Z", *record.CompletedAt)

	restored, err := mapper.FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, task.ID, restored.ID)
	assert.Equal(t, task.Name, restored.Name)
	assert.Equal(t, task.IsDailyHabit, restored.IsDailyHabit)
	assert.Equal(t, task.IsCompleted, restored.IsCompleted)
	assert.True(t, task.DueDate.Equal(restored.DueDate))
	require.NotNil(t, restored.CompletedAt)
	assert.True(t, completedAt.Equal(*restored.CompletedAt))
}

func TestTaskMapper_IncompleteTaskHasNoCompletedAt(t *testing.T) {
	mapper := NewTaskMapper()

	task := NewTask("Buy milk", false, time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC))
	record := mapper.ToRecord(task)
	assert.Nil(t, record.CompletedAt)

	restored, err := mapper.FromRecord(record)
	require.NoError(t, err)
	assert.False(t, restored.IsCompleted)
	assert.Nil(t, restored.CompletedAt)
}

func TestTaskMapper_FromRecordErrors(t *testing.T) {
	mapper := NewTaskMapper()
	badTime := "yesterday-ish"

	tests := []struct {
		name   string
		record sqlite.TaskRecord
	}{
		{
			name:   "invalid id",
			record: sqlite.TaskRecord{ID: "not-a-uuid", Name: "x", DueDate: "2024-03-01T08:00:00Z"},
		},
		{
			name:   "invalid due date",
			record: sqlite.TaskRecord{ID: uuid.NewString(), Name: "x", DueDate: "March 1st"},
		},
		{
			name:   "invalid completion time",
			record: sqlite.TaskRecord{ID: uuid.NewString(), Name: "x", DueDate: "2024-03-01T08:00:00Z", CompletedAt: &badTime},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapper.FromRecord(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestTaskMapper_FromRecordSlice_BadRecordPoisonsSnapshot(t *testing.T) {
	mapper := NewTaskMapper()

	records := []sqlite.TaskRecord{
		{ID: uuid.NewString(), Name: "good", DueDate: "2024-03-01T08:00:00Z"},
		{ID: "broken", Name: "bad", DueDate: "2024-03-01T08:00:00Z"},
	}

	tasks, err := mapper.FromRecordSlice(records)
	assert.Error(t, err)
	assert.Nil(t, tasks)
}
