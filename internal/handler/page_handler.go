package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/video"
)

const layout = "layout"

type PageHandler struct {
	videoService video.Service
}

func NewPageHandler(videoService video.Service) *PageHandler {
	return &PageHandler{videoService: videoService}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	videos, err := h.videoService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":  "StreamHub",
		"Videos": videos,
	}, layout)
}

func (h *PageHandler) Watch(c *fiber.Ctx) error {
	v, err := h.getVideo(c)
	if err != nil {
		return err
	}

	return c.Render("watch", fiber.Map{
		"Title": v.Title,
		"Video": v,
	}, layout)
}

func (h *PageHandler) Admin(c *fiber.Ctx) error {
	videos, err := h.videoService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin", fiber.Map{
		"Title":  "Admin",
		"Videos": videos,
	}, layout)
}

func (h *PageHandler) Edit(c *fiber.Ctx) error {
	v, err := h.getVideo(c)
	if err != nil {
		return err
	}

	return c.Render("edit", fiber.Map{
		"Title": "Edit " + v.Title,
		"Video": v,
	}, layout)
}

func (h *PageHandler) getVideo(c *fiber.Ctx) (*domain.Video, error) {
	id, err := parseVideoID(c)
	if err != nil {
		return nil, err
	}

	v, err := h.videoService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, middleware.NotFound("Video not found")
		}
		return nil, err
	}
	return v, nil
}
