package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) Storage {
	t.Helper()
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewLocal(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "store")
		_, err := NewLocal(dir)
		require.NoError(t, err)

		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	})

	t.Run("idempotent on existing directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewLocal(dir)
		require.NoError(t, err)
		_, err = NewLocal(dir)
		assert.NoError(t, err)
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		_, err := NewLocal("")
		assert.Error(t, err)
	})
}

func TestLocal_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestLocal(t)

	content := "docx bytes"
	info, err := s.Put(ctx, "bonafide_a.docx", strings.NewReader(content), PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: "application/octet-stream",
	})
	require.NoError(t, err)
	assert.Equal(t, "bonafide_a.docx", info.Key)
	assert.Equal(t, int64(len(content)), info.Size)

	rc, got, err := s.Get(ctx, "bonafide_a.docx")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Equal(t, int64(len(content)), got.Size)
}

func TestLocal_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestLocal(t)

	_, err := s.Put(ctx, "a.docx", strings.NewReader("old"), PutObjectOptions{})
	require.NoError(t, err)
	_, err = s.Put(ctx, "a.docx", strings.NewReader("newer"), PutObjectOptions{})
	require.NoError(t, err)

	rc, _, err := s.Get(ctx, "a.docx")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "newer", string(data))
}

func TestLocal_KeyValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestLocal(t)

	for _, key := range []string{"", "dir/file.docx", `dir\file.docx`, "."} {
		t.Run("key "+key, func(t *testing.T) {
			_, err := s.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{})
			assert.Error(t, err)

			_, err = s.Stat(ctx, key)
			assert.Error(t, err)

			err = s.Delete(ctx, key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrObjectNotFound)
		})
	}
}

func TestLocal_StatMissing(t *testing.T) {
	s := newTestLocal(t)

	_, err := s.Stat(context.Background(), "missing.docx")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocal_GetMissing(t *testing.T) {
	s := newTestLocal(t)

	_, _, err := s.Get(context.Background(), "missing.docx")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocal_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestLocal(t)

	_, err := s.Put(ctx, "a.docx", strings.NewReader("x"), PutObjectOptions{})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "a.docx"))

	// Second delete of the same key reports the object as gone.
	assert.ErrorIs(t, s.Delete(ctx, "a.docx"), ErrObjectNotFound)

	_, err = s.Stat(ctx, "a.docx")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocal_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = s.Put(ctx, "old.docx", strings.NewReader("1"), PutObjectOptions{})
	require.NoError(t, err)
	_, err = s.Put(ctx, "new.docx", strings.NewReader("22"), PutObjectOptions{})
	require.NoError(t, err)

	// Dotfiles and subdirectories are not objects.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	// Force distinct mtimes so the order is deterministic.
	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.docx"), older, older))

	objects, err := s.List(ctx)
	require.NoError(t, err)

	require.Len(t, objects, 2)
	assert.Equal(t, "new.docx", objects[0].Key)
	assert.Equal(t, "old.docx", objects[1].Key)
	assert.Equal(t, int64(2), objects[0].Size)
}

func TestLocal_ListEmpty(t *testing.T) {
	s := newTestLocal(t)

	objects, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestLocal_PutLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = s.Put(ctx, "a.docx", strings.NewReader("x"), PutObjectOptions{})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.docx", entries[0].Name())
}
