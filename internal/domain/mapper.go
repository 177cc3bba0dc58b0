package domain

import (
	"fmt"

	"momentum/internal/repository/sqlite"

	"github.com/google/uuid"
)

// TaskMapper handles conversion between domain and storage Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its storage record.
func (m *TaskMapper) ToRecord(task Task) sqlite.TaskRecord {
	return sqlite.TaskRecord{
		ID:           task.ID.String(),
		Name:         task.Name,
		IsDailyHabit: task.IsDailyHabit,
		IsCompleted:  task.IsCompleted,
		DueDate:      sqlite.FormatTimeForDB(task.DueDate),
		CompletedAt:  sqlite.FormatTimePtrForDB(task.CompletedAt),
	}
}

// FromRecord converts a storage record to a domain Task.
func (m *TaskMapper) FromRecord(record sqlite.TaskRecord) (Task, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return Task{}, fmt.Errorf("task %q has invalid id: %w", record.Name, err)
	}

	dueDate, err := sqlite.ParseTimeFromDB(record.DueDate)
	if err != nil {
		return Task{}, fmt.Errorf("task %q has invalid due date: %w", record.Name, err)
	}

	completedAt, err := sqlite.ParseTimePtrFromDB(record.CompletedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %q has invalid completion time: %w", record.Name, err)
	}

	return Task{
		ID:           id,
		Name:         record.Name,
		IsDailyHabit: record.IsDailyHabit,
		IsCompleted:  record.IsCompleted,
		DueDate:      dueDate,
		CompletedAt:  completedAt,
	}, nil
}

// ToRecordSlice converts a slice of domain Tasks to storage records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []sqlite.TaskRecord {
	records := make([]sqlite.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of storage records to domain Tasks.
// Any record that fails to decode poisons the whole snapshot: the error
// is returned and callers fall back to an empty collection.
func (m *TaskMapper) FromRecordSlice(records []sqlite.TaskRecord) ([]Task, error) {
	tasks := make([]Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
