package sqlite

// TaskRecord is the serialized form of a task as stored under the
// "tasks" state key. Field names and the RFC 3339 timestamp encoding
// are part of the durable state layout and must not change.
type TaskRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	IsDailyHabit bool    `json:"isDailyHabit"`
	IsCompleted  bool    `json:"isCompleted"`
	DueDate      string  `json:"dueDate"`
	CompletedAt  *string `json:"completedAt"`
}
