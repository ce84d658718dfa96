package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"personal-task-planner/internal/clock"
	"personal-task-planner/internal/model"
	"personal-task-planner/pkg/dateutil"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory Repository recording every save.
type mockRepo struct {
	mu        sync.Mutex
	blobs     map[string][]model.Task
	loadErr   error
	saveFails int // next N saves fail
	saveCount int
	saved     chan struct{} // signaled after every successful save
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		blobs: make(map[string][]model.Task),
		saved: make(chan struct{}, 64),
	}
}

func (r *mockRepo) LoadTasks(ctx context.Context, userID string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]model.Task, len(r.blobs[userID]))
	copy(out, r.blobs[userID])
	return out, nil
}

func (r *mockRepo) SaveTasks(ctx context.Context, userID string, collection []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveFails > 0 {
		r.saveFails--
		return context.DeadlineExceeded
	}
	stored := make([]model.Task, len(collection))
	copy(stored, collection)
	r.blobs[userID] = stored
	r.saveCount++
	select {
	case r.saved <- struct{}{}:
	default:
	}
	return nil
}

func (r *mockRepo) tasksFor(userID string) []model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Task, len(r.blobs[userID]))
	copy(out, r.blobs[userID])
	return out
}

// Fixed reference instant: 2024-06-10 07:30 UTC.
var testNow = time.Date(2024, 6, 10, 7, 30, 0, 0, time.UTC)

var (
	alice = model.Scope{UserID: "alice@example.com", Name: "Alice"}
	bob   = model.Scope{UserID: "bob@example.com", Name: "Bob"}
)

func newStore(t *testing.T, repo *mockRepo) *implUseCase {
	t.Helper()
	cal, err := dateutil.NewCalendar("UTC")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	uc := New(&mockLogger{}, repo, cal, clock.Fixed(testNow))
	t.Cleanup(func() { uc.Close(context.Background()) })
	return uc
}
