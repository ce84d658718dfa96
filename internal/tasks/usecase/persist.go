package usecase

import (
	"context"
	"sync"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks/repository"
	pkgLog "personal-task-planner/pkg/log"
)

// flushJob is one full-collection snapshot awaiting persistence.
type flushJob struct {
	userID     string
	collection []model.Task
	seq        uint64
}

// flusher persists collection snapshots without blocking mutations.
// Snapshots are coalesced: only the latest pending one is written, and seq
// numbers guarantee the last write (by call order) is the one that wins even
// when an inline flush races the background worker. A failed write is
// retried once, then dropped; in-memory state is never rolled back.
type flusher struct {
	l    pkgLog.Logger
	repo repository.Repository

	mu      sync.Mutex
	pending *flushJob
	seq     uint64

	writeMu     sync.Mutex
	lastWritten uint64

	signal chan struct{}
	quit   chan struct{}
	done   chan struct{}
}

func newFlusher(l pkgLog.Logger, repo repository.Repository) *flusher {
	f := &flusher{
		l:      l,
		repo:   repo,
		signal: make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go f.run()
	return f
}

// enqueue replaces the pending snapshot and wakes the worker. Never blocks.
func (f *flusher) enqueue(userID string, collection []model.Task) {
	f.mu.Lock()
	f.seq++
	f.pending = &flushJob{userID: userID, collection: collection, seq: f.seq}
	f.mu.Unlock()

	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// flush drains the pending snapshot inline and waits out any write the
// worker has in flight. Used on user switch and close so a detached user's
// last mutation is durable before the collection swaps.
func (f *flusher) flush(ctx context.Context) {
	f.drain(ctx)
	f.writeMu.Lock()
	f.writeMu.Unlock() //nolint:staticcheck // barrier for an in-flight worker write
}

func (f *flusher) close(ctx context.Context) {
	close(f.quit)
	<-f.done
	f.drain(ctx)
}

func (f *flusher) run() {
	for {
		select {
		case <-f.signal:
			f.drain(context.Background())
		case <-f.quit:
			close(f.done)
			return
		}
	}
}

func (f *flusher) drain(ctx context.Context) {
	for {
		f.mu.Lock()
		job := f.pending
		f.pending = nil
		f.mu.Unlock()
		if job == nil {
			return
		}
		f.write(ctx, job)
	}
}

func (f *flusher) write(ctx context.Context, job *flushJob) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if job.seq <= f.lastWritten {
		// a newer snapshot already landed
		return
	}

	if err := f.repo.SaveTasks(ctx, job.userID, job.collection); err != nil {
		f.l.Warnf(ctx, "tasks/usecase: persist for %s failed, retrying once: %v", job.userID, err)
		if err := f.repo.SaveTasks(ctx, job.userID, job.collection); err != nil {
			f.l.Errorf(ctx, "tasks/usecase: persist for %s dropped: %v", job.userID, err)
			return
		}
	}
	f.lastWritten = job.seq
}
