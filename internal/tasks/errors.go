package tasks

import "errors"

// Domain-specific errors for the tasks package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidDate     = errors.New("task date is not a valid date")
	ErrInvalidPriority = errors.New("unknown task priority")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoActiveSession = errors.New("no active user session")
	ErrScopeMismatch   = errors.New("scope does not match the active user")
)
