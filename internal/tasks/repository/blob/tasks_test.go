package blob_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/storage"
	"personal-task-planner/internal/tasks/repository/blob"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestLoadTasks_AbsentBlobIsEmptyCollection(t *testing.T) {
	r := blob.New(storage.NewMemory(), noopLogger{})

	got, err := r.LoadTasks(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := blob.New(storage.NewMemory(), noopLogger{})
	ctx := context.Background()

	collection := []model.Task{
		{ID: "1", Title: "BUY MILK", Date: "2024-06-10", FromTime: "08:00", ToTime: "08:30", Priority: model.PriorityLow, CreatedAt: 1718000000000},
		{ID: "2", Title: "PACK", Date: "2024-06-12", AllDay: true, Priority: model.PriorityHigh},
	}
	require.NoError(t, r.SaveTasks(ctx, "alice@example.com", collection))

	got, err := r.LoadTasks(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, collection, got)
}

func TestSaveTasks_UsersAreIsolated(t *testing.T) {
	r := blob.New(storage.NewMemory(), noopLogger{})
	ctx := context.Background()

	require.NoError(t, r.SaveTasks(ctx, "alice@example.com", []model.Task{{ID: "a", Title: "A", Date: "2024-06-10", AllDay: true}}))
	require.NoError(t, r.SaveTasks(ctx, "bob@example.com", []model.Task{{ID: "b", Title: "B", Date: "2024-06-10", AllDay: true}}))

	got, err := r.LoadTasks(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestLoadTasks_LegacyRecordsDecode(t *testing.T) {
	// Blobs written by an older schema may miss allDay/fromTime/toTime.
	// The repository just decodes; the store normalizes on load.
	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "tasks:old@example.com",
		[]byte(`[{"id":"legacy","title":"OLD","date":"2024-01-01","completed":false}]`)))

	r := blob.New(kv, noopLogger{})
	got, err := r.LoadTasks(ctx, "old@example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].ID)
	assert.False(t, got[0].AllDay)
	assert.Empty(t, got[0].FromTime)
}
