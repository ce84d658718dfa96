package tasks

import (
	"context"
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks/schedule"
)

// UseCase is the task store contract. Every method is scope-checked: sc must
// name the active user or the call fails with ErrScopeMismatch
// (ErrNoActiveSession when nobody is signed in).
type UseCase interface {
	// SetActiveUser swaps the in-memory collection to sc's persisted tasks.
	// The previous user's unflushed writes are flushed first; an absent blob
	// yields an empty collection.
	SetActiveUser(ctx context.Context, sc model.Scope) error

	// ClearActiveUser flushes pending writes and detaches the collection.
	// The persisted blob is kept.
	ClearActiveUser(ctx context.Context) error

	// Create normalizes the draft, assigns id and creation stamp, and
	// prepends it to the collection (newest-first).
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// Update replaces the task with matching id in place, preserving its
	// collection position. Returns ErrTaskNotFound for unknown ids.
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Delete removes the task with matching id. Returns ErrTaskNotFound for
	// unknown ids.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleComplete flips the completed flag and returns the updated task.
	// Returns ErrTaskNotFound for unknown ids.
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// List returns the raw collection snapshot in storage order
	// (newest-first by insertion).
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Views derives all time buckets and statistics at the store clock's
	// current instant.
	Views(ctx context.Context, sc model.Scope) (schedule.Views, error)

	// ViewsAt derives views at an explicit reference instant. Pure with
	// respect to collection + instant: same inputs, same output.
	ViewsAt(ctx context.Context, sc model.Scope, at time.Time) (schedule.Views, error)
}
