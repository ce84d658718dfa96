package usecase

import (
	"context"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
)

// Create normalizes the draft and prepends it to the collection so the
// newest task is first in storage order. Persistence runs in the background;
// the created task is visible to reads immediately.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tasks.CreateTaskInput) (tasks.CreateTaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireReady(sc); err != nil {
		return tasks.CreateTaskOutput{}, err
	}

	task, err := uc.norm.NormalizeNew(input, uc.clk.Now())
	if err != nil {
		return tasks.CreateTaskOutput{}, err
	}

	uc.collection = append([]model.Task{task}, uc.collection...)
	uc.commit()
	return tasks.CreateTaskOutput{Task: task}, nil
}
