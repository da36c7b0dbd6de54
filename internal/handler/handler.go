package handler

import (
	"github.com/gofiber/fiber/v2"

	"streamhub/internal/service"
)

type Handlers struct {
	Page   *PageHandler
	Admin  *AdminHandler
	API    *APIHandler
	Health *HealthHandler
}

func NewHandlers(services *service.Services, maxBannerSize int64) *Handlers {
	return &Handlers{
		Page:   NewPageHandler(services.Video),
		Admin:  NewAdminHandler(services.Video, maxBannerSize),
		API:    NewAPIHandler(services.Video, services.Stats),
		Health: NewHealthHandler(),
	}
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", h.Health.Check)

	app.Get("/", h.Page.Home)
	app.Get("/watch/:id", h.Page.Watch)

	admin := app.Group("/admin")
	admin.Get("/", h.Page.Admin)
	admin.Post("/upload", h.Admin.Upload)
	admin.Get("/edit/:id", h.Page.Edit)
	admin.Post("/edit/:id", h.Admin.Update)
	admin.Post("/delete/:id", h.Admin.Delete)

	api := app.Group("/api")
	api.Get("/videos", h.API.ListVideos)
	api.Get("/video/:id", h.API.GetVideo)
	api.Get("/stats", h.API.Stats)
}

func parseVideoID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid video ID")
	}
	return int64(id), nil
}
