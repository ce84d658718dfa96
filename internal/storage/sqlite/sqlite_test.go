package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-planner/internal/storage"
)

func setupKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKV_GetMissingKey(t *testing.T) {
	kv := setupKV(t)

	_, err := kv.Get(context.Background(), "tasks:nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestKV_SetGetRoundTrip(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	blob := []byte(`[{"id":"1","title":"BUY MILK"}]`)
	require.NoError(t, kv.Set(ctx, "tasks:alice@example.com", blob))

	got, err := kv.Get(ctx, "tasks:alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "tasks:alice@example.com", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "tasks:alice@example.com", []byte(`[{"id":"2"}]`)))

	got, err := kv.Get(ctx, "tasks:alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"2"}]`), got)
}

func TestKV_KeysAreIsolated(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "tasks:alice@example.com", []byte(`["alice"]`)))
	require.NoError(t, kv.Set(ctx, "tasks:bob@example.com", []byte(`["bob"]`)))

	got, err := kv.Get(ctx, "tasks:alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["alice"]`), got)
}

func TestKV_Delete(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "session", []byte(`alice@example.com`)))
	require.NoError(t, kv.Delete(ctx, "session"))

	_, err := kv.Get(ctx, "session")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// deleting a missing key is a no-op
	assert.NoError(t, kv.Delete(ctx, "session"))
}
