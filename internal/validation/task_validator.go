package validation

import (
	"strings"
)

const (
	taskNameMinLength = 1
	taskNameMaxLength = 255
)

// TaskValidator provides validation for task-related input.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// IsBlank reports whether a task name is empty after trimming
// surrounding whitespace. A blank name is "nothing to add" rather than
// an error, so callers check this before running full validation.
func (tv *TaskValidator) IsBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if len(trimmed) > taskNameMaxLength {
		validationError.AddInvalidLengthError("task_name", trimmed, taskNameMinLength, taskNameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
