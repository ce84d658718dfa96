package usecase

import (
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
)

// requireReady checks the store is Ready and serving sc. Callers hold mu.
func (uc *implUseCase) requireReady(sc model.Scope) error {
	if uc.state != tasks.StateReady {
		return tasks.ErrNoActiveSession
	}
	if sc.UserID != uc.active.UserID {
		return tasks.ErrScopeMismatch
	}
	return nil
}

// indexOf returns the collection position of id, or -1. Callers hold mu.
func (uc *implUseCase) indexOf(id string) int {
	for i, t := range uc.collection {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the collection for hand-off outside mu. Callers hold mu.
func (uc *implUseCase) snapshot() []model.Task {
	out := make([]model.Task, len(uc.collection))
	copy(out, uc.collection)
	return out
}

// commit bumps the revision and hands the flusher a fresh snapshot.
// Callers hold mu and have already mutated the collection.
func (uc *implUseCase) commit() {
	uc.rev++
	uc.flusher.enqueue(uc.active.UserID, uc.snapshot())
}
