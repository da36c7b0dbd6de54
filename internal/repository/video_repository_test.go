package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub/internal/database"
	"streamhub/internal/domain"
	"streamhub/internal/repository"
)

func newTestRepo(t *testing.T) repository.VideoRepository {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return repository.NewVideoRepository(db)
}

func newVideo(title string) *domain.Video {
	return &domain.Video{
		Title:         title,
		StreamtapeURL: "https://streamtape.com/e/" + title + "/",
		StreamtapeID:  title,
		BannerPath:    "static/banners/" + title + ".jpg",
	}
}

func TestVideoRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	hashtags := "go, sqlite"
	video := newVideo("first")
	video.Hashtags = &hashtags

	require.NoError(t, repo.Create(ctx, video))
	assert.NotZero(t, video.ID)
	assert.False(t, video.CreatedAt.IsZero())
	assert.Equal(t, video.CreatedAt, video.UpdatedAt)

	got, err := repo.GetByID(ctx, video.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
	assert.Nil(t, got.Description)
	require.NotNil(t, got.Hashtags)
	assert.Equal(t, hashtags, *got.Hashtags)
	assert.Equal(t, video.BannerPath, got.BannerPath)
	assert.True(t, video.CreatedAt.Equal(got.CreatedAt))
}

func TestVideoRepository_GetByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVideoRepository_ListOrderedByCreatedDesc(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, newVideo(title)))
		time.Sleep(2 * time.Millisecond)
	}

	videos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "c", videos[0].Title)
	assert.Equal(t, "b", videos[1].Title)
	assert.Equal(t, "a", videos[2].Title)
	for i := 1; i < len(videos); i++ {
		assert.False(t, videos[i].CreatedAt.After(videos[i-1].CreatedAt))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Title)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestVideoRepository_ListEmpty(t *testing.T) {
	repo := newTestRepo(t)

	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestVideoRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := newVideo("before")
	require.NoError(t, repo.Create(ctx, video))
	createdAt := video.CreatedAt

	time.Sleep(2 * time.Millisecond)
	desc := "now with a description"
	video.Title = "after"
	video.Description = &desc
	video.BannerPath = "static/banners/new.png"
	require.NoError(t, repo.Update(ctx, video))

	got, err := repo.GetByID(ctx, video.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, "static/banners/new.png", got.BannerPath)
	assert.True(t, createdAt.Equal(got.CreatedAt))
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestVideoRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	video := newVideo("ghost")
	video.ID = 42
	err := repo.Update(context.Background(), video)
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestVideoRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := newVideo("doomed")
	require.NoError(t, repo.Create(ctx, video))

	require.NoError(t, repo.Delete(ctx, video.ID))

	got, err := repo.GetByID(ctx, video.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, video.ID), domain.ErrVideoNotFound)
}

func TestVideoRepository_ListHashtags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tagged := newVideo("tagged")
	tags := "a, b"
	tagged.Hashtags = &tags
	require.NoError(t, repo.Create(ctx, tagged))
	require.NoError(t, repo.Create(ctx, newVideo("untagged")))

	hashtags, err := repo.ListHashtags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a, b"}, hashtags)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "twice.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))
}
