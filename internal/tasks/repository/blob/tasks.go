package blob

import (
	"context"
	"encoding/json"
	"errors"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/storage"
	repo "personal-task-planner/internal/tasks/repository"
)

// LoadTasks reads and decodes the user's blob. An absent key is a clean
// start, not an error.
func (r *implRepository) LoadTasks(ctx context.Context, userID string) ([]model.Task, error) {
	raw, err := r.kv.Get(ctx, blobKey(userID))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "tasks/repository/blob.LoadTasks: %v", err)
		return nil, repo.ErrFailedToLoad
	}

	var collection []model.Task
	if err := json.Unmarshal(raw, &collection); err != nil {
		r.l.Errorf(ctx, "tasks/repository/blob.LoadTasks unmarshal: %v", err)
		return nil, repo.ErrFailedToLoad
	}
	return collection, nil
}

// SaveTasks writes the full JSON array for the user, replacing any previous
// blob.
func (r *implRepository) SaveTasks(ctx context.Context, userID string, collection []model.Task) error {
	if collection == nil {
		collection = []model.Task{}
	}
	raw, err := json.Marshal(collection)
	if err != nil {
		r.l.Errorf(ctx, "tasks/repository/blob.SaveTasks marshal: %v", err)
		return repo.ErrFailedToSave
	}

	if err := r.kv.Set(ctx, blobKey(userID), raw); err != nil {
		r.l.Errorf(ctx, "tasks/repository/blob.SaveTasks: %v", err)
		return repo.ErrFailedToSave
	}
	return nil
}
