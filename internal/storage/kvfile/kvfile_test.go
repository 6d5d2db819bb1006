package kvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_AbsentKey(t *testing.T) {
	s := newTestStore(t)

	raw, ok, err := s.Get(context.Background(), "achievements")
	require.NoError(t, err)
	assert.False(t, ok, "a never-written key must read as absent")
	assert.Nil(t, raw)
}

func TestSetThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"1"}`)))

	raw, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, string(raw))
}

func TestSet_OverwritesWholeValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "comments", []byte(`["old"]`)))
	require.NoError(t, s.Set(ctx, "comments", []byte(`[]`)))

	raw, ok, err := s.Get(ctx, "comments")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(raw))
}

func TestSet_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "user", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user.json", entries[0].Name())
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "user"))

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok, "deleted key must read as absent")

	// Deleting again is a no-op, not an error.
	assert.NoError(t, s.Delete(ctx, "user"))
}

func TestNew_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "society")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
