package service

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic indicates a lesson request without a topic.
var ErrEmptyTopic = errors.New("lesson topic cannot be empty")

// LessonServiceError is a custom error type for lesson service errors.
type LessonServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for LessonServiceError.
func (e *LessonServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lesson service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("lesson service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LessonServiceError) Unwrap() error {
	return e.Err
}

// NewLessonServiceError creates a new LessonServiceError.
func NewLessonServiceError(operation, message string, err error) *LessonServiceError {
	return &LessonServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
