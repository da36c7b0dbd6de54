package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub/internal/domain"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewLocalStore(root, "static/banners")
	require.NoError(t, err)
	return store, root
}

func imageUpload(name, body string) *FileUpload {
	return &FileUpload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(body)),
		Reader:      strings.NewReader(body),
	}
}

func TestNewLocalStore_Idempotent(t *testing.T) {
	root := t.TempDir()

	_, err := NewLocalStore(root, "static/banners")
	require.NoError(t, err)
	_, err = NewLocalStore(root, "static/banners")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "static", "banners"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStore_Save(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	t.Run("Writes file and keeps extension", func(t *testing.T) {
		relPath, err := store.Save(ctx, imageUpload("poster.png", "png-bytes"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(relPath, "static/banners/"))
		assert.Equal(t, ".png", filepath.Ext(relPath))

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("Defaults extension to jpg", func(t *testing.T) {
		relPath, err := store.Save(ctx, imageUpload("poster", "x"))
		require.NoError(t, err)
		assert.Equal(t, ".jpg", filepath.Ext(relPath))
	})

	t.Run("Unique names for the same upload name", func(t *testing.T) {
		first, err := store.Save(ctx, imageUpload("same.png", "1"))
		require.NoError(t, err)
		second, err := store.Save(ctx, imageUpload("same.png", "2"))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := store.Save(ctx, imageUpload("", "x"))
		assert.ErrorIs(t, err, domain.ErrMissingFile)

		_, err = store.Save(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})

	t.Run("Unsupported media type", func(t *testing.T) {
		upload := imageUpload("notes.txt", "x")
		upload.ContentType = "text/plain"

		_, err := store.Save(ctx, upload)
		assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestLocalStore_SaveWriteFailureLeavesNoFile(t *testing.T) {
	store, root := newTestStore(t)

	upload := imageUpload("broken.png", "")
	upload.Reader = failingReader{}

	_, err := store.Save(context.Background(), upload)
	assert.ErrorIs(t, err, domain.ErrStorageWriteFailed)
	assert.Contains(t, err.Error(), "connection reset")

	entries, err := os.ReadDir(filepath.Join(root, "static", "banners"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_Delete(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	relPath, err := store.Save(ctx, imageUpload("gone.png", "x"))
	require.NoError(t, err)
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))

	store.Delete(ctx, relPath)
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))

	assert.NotPanics(t, func() {
		store.Delete(ctx, relPath)
		store.Delete(ctx, "")
		store.Delete(ctx, "static/banners/never-existed.jpg")
	})
}

func TestLocalStore_DeleteOutsideBannerDir(t *testing.T) {
	store, root := newTestStore(t)

	outside := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))

	store.Delete(context.Background(), "static/banners/../../keep.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocalStore_URL(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, "/static/banners/a.jpg", store.URL("static/banners/a.jpg"))
}

func TestBannerName(t *testing.T) {
	assert.True(t, strings.HasSuffix(bannerName("a.b.gif"), ".gif"))
	assert.True(t, strings.HasSuffix(bannerName(`C:\pics\poster.webp`), ".webp"))
	assert.True(t, strings.HasSuffix(bannerName("dir.v2/poster"), ".jpg"))
	assert.NotContains(t, bannerName("../../evil.png"), "/")
}
