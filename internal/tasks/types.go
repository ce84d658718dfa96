package tasks

import "personal-task-planner/internal/model"

// StoreState is the lifecycle state of the task store.
// Uninitialized → Loading when an active user is set; Loading → Ready once
// the persisted blob (or empty default) has been parsed into memory.
// Switching the active user resets to Uninitialized and immediately re-enters
// Loading.
type StoreState int

const (
	StateUninitialized StoreState = iota
	StateLoading
	StateReady
)

func (s StoreState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// --- UseCase Inputs ---

// CreateTaskInput is a task draft. Date may be any parseable date value;
// the normalizer canonicalizes it to local YYYY-MM-DD.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Date        string
	AllDay      bool
	FromTime    string
	ToTime      string
}

// UpdateTaskInput is the full replacement record for an existing task.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	Date        string
	AllDay      bool
	FromTime    string
	ToTime      string
	Completed   bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
