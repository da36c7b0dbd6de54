package video

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
	"streamhub/internal/service/stats"
	"streamhub/internal/storage"
)

type Service interface {
	List(ctx context.Context) ([]domain.Video, error)
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	Upload(ctx context.Context, input domain.VideoInput, banner *storage.FileUpload) (int64, error)
	Update(ctx context.Context, id int64, input domain.VideoInput, banner *storage.FileUpload) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	videoRepo repository.VideoRepository
	banners   storage.BannerStore
	redis     *redis.Client
}

func NewService(videoRepo repository.VideoRepository, banners storage.BannerStore, redis *redis.Client) Service {
	return &service{
		videoRepo: videoRepo,
		banners:   banners,
		redis:     redis,
	}
}

func (s *service) List(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range videos {
		videos[i].BannerURL = s.banners.URL(videos[i].BannerPath)
	}
	return videos, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, domain.ErrVideoNotFound
	}

	video.BannerURL = s.banners.URL(video.BannerPath)
	return video, nil
}

// Upload stores the banner first and only then creates the record. A failed
// create removes the banner again so no file is left without a record.
func (s *service) Upload(ctx context.Context, input domain.VideoInput, banner *storage.FileUpload) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	bannerPath, err := s.banners.Save(ctx, banner)
	if err != nil {
		return 0, err
	}

	video := &domain.Video{BannerPath: bannerPath}
	input.Apply(video)

	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.banners.Delete(context.WithoutCancel(ctx), bannerPath)
		return 0, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.invalidateStats(ctx)
	return video.ID, nil
}

// Update replaces the record's fields. With a new banner, the old file is
// removed only after the new state is committed; if the commit fails the new
// file is removed instead and the old one stays referenced.
func (s *service) Update(ctx context.Context, id int64, input domain.VideoInput, banner *storage.FileUpload) error {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if video == nil {
		return domain.ErrVideoNotFound
	}

	if err := input.Validate(); err != nil {
		return err
	}

	oldBannerPath := video.BannerPath
	newBannerPath := ""
	if hasFile(banner) {
		newBannerPath, err = s.banners.Save(ctx, banner)
		if err != nil {
			return err
		}
	}

	input.Apply(video)
	if newBannerPath != "" {
		video.BannerPath = newBannerPath
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		if newBannerPath != "" {
			s.banners.Delete(context.WithoutCancel(ctx), newBannerPath)
		}
		if errors.Is(err, domain.ErrVideoNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if newBannerPath != "" && newBannerPath != oldBannerPath {
		s.banners.Delete(context.WithoutCancel(ctx), oldBannerPath)
	}

	s.invalidateStats(ctx)
	return nil
}

// Delete removes the record, then its banner. The banner removal is
// best-effort and cannot fail the call.
func (s *service) Delete(ctx context.Context, id int64) error {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if video == nil {
		return domain.ErrVideoNotFound
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.banners.Delete(context.WithoutCancel(ctx), video.BannerPath)

	s.invalidateStats(ctx)
	return nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, stats.CacheKey).Err(); err != nil {
		log.Printf("Warning: failed to invalidate stats cache: %v", err)
	}
}

func hasFile(upload *storage.FileUpload) bool {
	return upload != nil && upload.Filename != ""
}
