package usecase

import (
	"context"
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks/schedule"
)

// List returns the raw collection in storage order (newest-first).
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireReady(sc); err != nil {
		return nil, err
	}
	return uc.snapshot(), nil
}

// Views derives all buckets at the store clock's current instant.
func (uc *implUseCase) Views(ctx context.Context, sc model.Scope) (schedule.Views, error) {
	return uc.ViewsAt(ctx, sc, uc.clk.Now())
}

// ViewsAt derives all buckets at an explicit instant. Results are memoized
// per (user, collection revision, minute): the classification windows have
// minute granularity, so within one minute of one revision the derivation
// is referentially identical.
func (uc *implUseCase) ViewsAt(ctx context.Context, sc model.Scope, at time.Time) (schedule.Views, error) {
	uc.mu.Lock()
	if err := uc.requireReady(sc); err != nil {
		uc.mu.Unlock()
		return schedule.Views{}, err
	}

	key := viewKey{userID: uc.active.UserID, rev: uc.rev, minute: at.Unix() / 60}
	if cached, ok := uc.viewCache.Get(key); ok {
		uc.mu.Unlock()
		return cached, nil
	}
	collection := uc.snapshot()
	uc.mu.Unlock()

	views := schedule.Derive(collection, at, uc.cal)
	uc.viewCache.Add(key, views)
	return views, nil
}
