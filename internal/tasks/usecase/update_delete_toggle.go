package usecase

import (
	"context"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
)

// Update replaces the matching task in place, preserving its collection
// position and creation stamp. A missing id is an explicit ErrTaskNotFound:
// a deleted task can never be resurrected through Update.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input tasks.UpdateTaskInput) (tasks.UpdateTaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireReady(sc); err != nil {
		return tasks.UpdateTaskOutput{}, err
	}

	i := uc.indexOf(input.ID)
	if i < 0 {
		return tasks.UpdateTaskOutput{}, tasks.ErrTaskNotFound
	}

	task, err := uc.norm.NormalizeUpdate(input, uc.collection[i].CreatedAt)
	if err != nil {
		return tasks.UpdateTaskOutput{}, err
	}

	uc.collection[i] = task
	uc.commit()
	return tasks.UpdateTaskOutput{Task: task}, nil
}

// Delete removes the matching task. Returns ErrTaskNotFound for unknown ids.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireReady(sc); err != nil {
		return err
	}

	i := uc.indexOf(id)
	if i < 0 {
		return tasks.ErrTaskNotFound
	}

	uc.collection = append(uc.collection[:i], uc.collection[i+1:]...)
	uc.commit()
	return nil
}

// ToggleComplete flips the completed flag and returns the updated task.
// The transient overdue flag is untouched; it lives only on view copies.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireReady(sc); err != nil {
		return model.Task{}, err
	}

	i := uc.indexOf(id)
	if i < 0 {
		return model.Task{}, tasks.ErrTaskNotFound
	}

	uc.collection[i].Completed = !uc.collection[i].Completed
	uc.commit()
	return uc.collection[i], nil
}
