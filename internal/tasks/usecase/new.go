package usecase

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"personal-task-planner/internal/clock"
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
	"personal-task-planner/internal/tasks/repository"
	"personal-task-planner/internal/tasks/schedule"
	"personal-task-planner/pkg/dateutil"
	pkgLog "personal-task-planner/pkg/log"
)

// viewCacheSize bounds the derived-view memo. Keys rotate every minute and
// on every mutation, so a small cache is plenty.
const viewCacheSize = 128

type viewKey struct {
	userID string
	rev    uint64
	minute int64
}

// implUseCase is the task store: it owns the in-memory collection of the
// active user and serializes all access behind mu. Holding mu through the
// blob load realizes the Loading state: callers arriving mid-switch block
// until the collection is Ready, so no call can ever observe another user's
// tasks.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	norm *tasks.Normalizer
	cal  *dateutil.Calendar
	clk  clock.Clock

	viewCache *lru.Cache[viewKey, schedule.Views]
	flusher   *flusher

	mu         sync.Mutex
	state      tasks.StoreState
	active     model.Scope
	collection []model.Task
	rev        uint64
}

// New creates the task store. The returned store is Uninitialized until
// SetActiveUser is called.
func New(l pkgLog.Logger, repo repository.Repository, cal *dateutil.Calendar, clk clock.Clock) *implUseCase {
	cache, err := lru.New[viewKey, schedule.Views](viewCacheSize)
	if err != nil {
		panic("tasks/usecase: view cache: " + err.Error())
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		norm:      tasks.NewNormalizer(cal),
		cal:       cal,
		clk:       clk,
		viewCache: cache,
		flusher:   newFlusher(l, repo),
	}
}

// Close flushes pending persistence writes and stops the background flusher.
func (uc *implUseCase) Close(ctx context.Context) {
	uc.flusher.close(ctx)
}

// State reports the store lifecycle state, for health reporting.
func (uc *implUseCase) State() tasks.StoreState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}
