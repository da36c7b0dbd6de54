package handler

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/video"
	"streamhub/internal/storage"
)

const adminPath = "/admin"

type AdminHandler struct {
	videoService  video.Service
	maxBannerSize int64
}

func NewAdminHandler(videoService video.Service, maxBannerSize int64) *AdminHandler {
	return &AdminHandler{
		videoService:  videoService,
		maxBannerSize: maxBannerSize,
	}
}

func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	banner, closeBanner, err := h.bannerUpload(c)
	if err != nil {
		return err
	}
	defer closeBanner()

	if _, err := h.videoService.Upload(c.Context(), videoForm(c), banner); err != nil {
		return err
	}

	return c.Redirect(adminPath, fiber.StatusSeeOther)
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := parseVideoID(c)
	if err != nil {
		return err
	}

	banner, closeBanner, err := h.bannerUpload(c)
	if err != nil {
		return err
	}
	defer closeBanner()

	if err := h.videoService.Update(c.Context(), id, videoForm(c), banner); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return middleware.NotFound("Video not found")
		}
		return err
	}

	return c.Redirect(adminPath, fiber.StatusSeeOther)
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseVideoID(c)
	if err != nil {
		return err
	}

	if err := h.videoService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return middleware.NotFound("Video not found")
		}
		return err
	}

	return c.Redirect(adminPath, fiber.StatusSeeOther)
}

func videoForm(c *fiber.Ctx) domain.VideoInput {
	return domain.VideoInput{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		Hashtags:      c.FormValue("hashtags"),
		StreamtapeURL: c.FormValue("streamtape_url"),
	}
}

// bannerUpload opens the optional "banner" form file. A missing file yields
// a nil upload; the caller decides whether that is an error.
func (h *AdminHandler) bannerUpload(c *fiber.Ctx) (*storage.FileUpload, func(), error) {
	noop := func() {}

	file, err := c.FormFile("banner")
	if err != nil || file == nil || file.Filename == "" {
		return nil, noop, nil
	}

	if h.maxBannerSize > 0 && file.Size > h.maxBannerSize {
		return nil, noop, middleware.PayloadTooLarge(fmt.Sprintf("File size must be less than %dMB", h.maxBannerSize/(1024*1024)))
	}

	var reader multipart.File
	reader, err = file.Open()
	if err != nil {
		return nil, noop, middleware.BadRequest("Failed to read file")
	}

	return &storage.FileUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Reader:      reader,
	}, func() { _ = reader.Close() }, nil
}
