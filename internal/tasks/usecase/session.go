package usecase

import (
	"context"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
)

// SetActiveUser swaps the store to sc's collection. The previous user's
// pending writes are flushed first, the collection is cleared before the
// new blob is read, and mu stays held throughout, so callers arriving during
// the load block until the store is Ready again.
func (uc *implUseCase) SetActiveUser(ctx context.Context, sc model.Scope) error {
	if sc.IsZero() {
		return tasks.ErrNoActiveSession
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state == tasks.StateReady && uc.active.UserID == sc.UserID {
		return nil
	}

	uc.flusher.flush(ctx)
	uc.collection = nil
	uc.active = model.Scope{}
	uc.state = tasks.StateLoading

	loaded, err := uc.repo.LoadTasks(ctx, sc.UserID)
	if err != nil {
		uc.state = tasks.StateUninitialized
		uc.l.Errorf(ctx, "uc.SetActiveUser LoadTasks: %v", err)
		return err
	}

	uc.collection = uc.migrate(ctx, loaded)
	uc.active = sc
	uc.rev++
	uc.state = tasks.StateReady
	uc.l.Infof(ctx, "task store ready for %s (%d tasks)", sc.UserID, len(uc.collection))
	return nil
}

// ClearActiveUser detaches the collection after flushing pending writes.
// The persisted blob stays in storage.
func (uc *implUseCase) ClearActiveUser(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.flusher.flush(ctx)
	uc.collection = nil
	uc.active = model.Scope{}
	uc.state = tasks.StateUninitialized
	return nil
}

// migrate runs every loaded record through the normalizer so blobs written
// by an older schema (missing allDay/fromTime/toTime) regain the invariants.
// A record the normalizer rejects is kept as stored rather than dropped.
func (uc *implUseCase) migrate(ctx context.Context, loaded []model.Task) []model.Task {
	out := make([]model.Task, 0, len(loaded))
	for _, t := range loaded {
		normalized, err := uc.norm.Normalize(t)
		if err != nil {
			uc.l.Warnf(ctx, "uc.migrate keeping unnormalizable task %s: %v", t.ID, err)
			out = append(out, t)
			continue
		}
		normalized.ID = t.ID
		normalized.CreatedAt = t.CreatedAt
		out = append(out, normalized)
	}
	return out
}
