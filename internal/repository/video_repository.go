package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	List(ctx context.Context) ([]domain.Video, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	ListHashtags(ctx context.Context) ([]string, error)
}

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoColumns = `id, title, description, hashtags, streamtape_url, streamtape_id, banner_path, created_at, updated_at`

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO videos (title, description, hashtags, streamtape_url, streamtape_id, banner_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowxContext(ctx, query,
		video.Title, video.Description, video.Hashtags,
		video.StreamtapeURL, video.StreamtapeID, video.BannerPath,
		ts, ts,
	).Scan(&video.ID)
	if err != nil {
		return err
	}

	video.CreatedAt = ts
	video.UpdatedAt = ts
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	var video domain.Video
	query := r.db.Rebind(`SELECT ` + videoColumns + ` FROM videos WHERE id = ?`)

	err := r.db.GetContext(ctx, &video, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]domain.Video, error) {
	videos := []domain.Video{}
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC, id DESC`
	err := r.db.SelectContext(ctx, &videos, query)
	return videos, err
}

func (r *videoRepository) ListRecent(ctx context.Context, limit int) ([]domain.Video, error) {
	videos := []domain.Video{}
	query := r.db.Rebind(`SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC, id DESC LIMIT ?`)
	err := r.db.SelectContext(ctx, &videos, query, limit)
	return videos, err
}

// Update replaces every mutable column of the row and refreshes updated_at.
// It returns domain.ErrVideoNotFound when the row does not exist.
func (r *videoRepository) Update(ctx context.Context, video *domain.Video) error {
	ts := now()
	if ts.Before(video.CreatedAt) {
		ts = video.CreatedAt
	}

	query := r.db.Rebind(`
		UPDATE videos
		SET title = ?, description = ?, hashtags = ?, streamtape_url = ?,
			streamtape_id = ?, banner_path = ?, updated_at = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		video.Title, video.Description, video.Hashtags, video.StreamtapeURL,
		video.StreamtapeID, video.BannerPath, ts,
		video.ID,
	)
	if err != nil {
		return err
	}

	if err := expectOneRow(result); err != nil {
		return err
	}

	video.UpdatedAt = ts
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM videos WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *videoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM videos`)
	return count, err
}

func (r *videoRepository) ListHashtags(ctx context.Context) ([]string, error) {
	hashtags := []string{}
	query := `SELECT hashtags FROM videos WHERE hashtags IS NOT NULL AND hashtags <> ''`
	err := r.db.SelectContext(ctx, &hashtags, query)
	return hashtags, err
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}
