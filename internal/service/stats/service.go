package stats

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
)

const (
	CacheKey    = "videos:stats"
	RecentLimit = 5
)

type RecentVideo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Stats struct {
	TotalVideos    int64         `json:"total_videos"`
	UniqueHashtags int           `json:"unique_hashtags"`
	RecentVideos   []RecentVideo `json:"recent_videos"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	videoRepo repository.VideoRepository
	redis     *redis.Client
	ttl       time.Duration
}

func NewService(videoRepo repository.VideoRepository, redis *redis.Client, ttl time.Duration) Service {
	return &service{
		videoRepo: videoRepo,
		redis:     redis,
		ttl:       ttl,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, CacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	total, err := s.videoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.videoRepo.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}

	hashtags, err := s.videoRepo.ListHashtags(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalVideos:    total,
		UniqueHashtags: countUnique(hashtags),
		RecentVideos:   make([]RecentVideo, 0, len(recent)),
	}
	for _, v := range recent {
		stats.RecentVideos = append(stats.RecentVideos, RecentVideo{
			ID:        v.ID,
			Title:     v.Title,
			CreatedAt: v.CreatedAt,
		})
	}

	if s.redis != nil && s.ttl > 0 {
		if statsJSON, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, CacheKey, statsJSON, s.ttl).Err(); err != nil {
				log.Printf("Warning: failed to cache stats: %v", err)
			}
		}
	}

	return stats, nil
}

func countUnique(rawHashtags []string) int {
	seen := make(map[string]struct{})
	for _, raw := range rawHashtags {
		for _, tag := range domain.SplitHashtags(raw) {
			seen[tag] = struct{}{}
		}
	}
	return len(seen)
}
