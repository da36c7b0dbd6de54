package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/stats"
	"streamhub/internal/service/video"
)

type APIHandler struct {
	videoService video.Service
	statsService stats.Service
}

func NewAPIHandler(videoService video.Service, statsService stats.Service) *APIHandler {
	return &APIHandler{
		videoService: videoService,
		statsService: statsService,
	}
}

func (h *APIHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.videoService.List(c.Context())
	if err != nil {
		return err
	}

	result := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		result = append(result, newVideoResponse(v))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"count":  len(result),
		"videos": result,
	})
}

func (h *APIHandler) GetVideo(c *fiber.Ctx) error {
	id, err := parseVideoID(c)
	if err != nil {
		return err
	}

	v, err := h.videoService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return middleware.NotFound("Video not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"video":  newVideoResponse(*v),
	})
}

func (h *APIHandler) Stats(c *fiber.Ctx) error {
	result, err := h.statsService.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"stats":  result,
	})
}
