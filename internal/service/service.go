package service

import (
	"github.com/redis/go-redis/v9"

	"streamhub/internal/config"
	"streamhub/internal/repository"
	"streamhub/internal/service/stats"
	"streamhub/internal/service/video"
	"streamhub/internal/storage"
)

type Services struct {
	Video video.Service
	Stats stats.Service
}

func NewServices(repos *repository.Repositories, banners storage.BannerStore, redis *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Video: video.NewService(repos.Video, banners, redis),
		Stats: stats.NewService(repos.Video, redis, cfg.StatsCacheTTL),
	}
}
