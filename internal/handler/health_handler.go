package handler

import "github.com/gofiber/fiber/v2"

const (
	serviceName    = "StreamHub Video Platform"
	serviceVersion = "1.0.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"message": "All systems operational",
	})
}
