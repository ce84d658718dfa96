package repository

import (
	"context"

	"personal-task-planner/internal/model"
)

// Repository is the persistence boundary of the task store. One blob per
// user, written in full on every mutation.
type Repository interface {
	// LoadTasks returns the user's persisted collection, or an empty one
	// (nil, nil) when nothing has been stored yet.
	LoadTasks(ctx context.Context, userID string) ([]model.Task, error)

	// SaveTasks replaces the user's persisted collection wholesale.
	SaveTasks(ctx context.Context, userID string, collection []model.Task) error
}
