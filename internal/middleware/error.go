package middleware

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler renders errors as JSON for API routes and as the "error"
// template for pages.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, errorCode, message := classify(err)
	traceID := uuid.New().String()[:8]

	if code >= fiber.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", traceID, c.Method(), c.Path(), err)
	}

	if wantsJSON(c) {
		return c.Status(code).JSON(ErrorResponse{
			Code:    errorCode,
			Message: message,
			TraceID: traceID,
		})
	}

	renderErr := c.Status(code).Render("error", fiber.Map{
		"Title":   fmt.Sprintf("%d", code),
		"Status":  code,
		"Message": message,
		"TraceID": traceID,
	}, "layout")
	if renderErr != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(code).SendString(fallbackPage(code, message))
	}
	return nil
}

func classify(err error) (int, string, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, codeForStatus(fe.Code), fe.Message
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Message
	case errors.Is(err, domain.ErrVideoNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "Video not found"
	case errors.Is(err, domain.ErrMissingFile):
		return fiber.StatusBadRequest, "MISSING_FILE", "No file provided"
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Only image files are allowed"
	case errors.Is(err, domain.ErrStorageWriteFailed):
		return fiber.StatusInternalServerError, "STORAGE_ERROR", err.Error()
	case errors.Is(err, domain.ErrPersistence):
		return fiber.StatusInternalServerError, "DATABASE_ERROR", err.Error()
	}

	return fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error()
}

func codeForStatus(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "FILE_TOO_LARGE"
	case fiber.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	}
	return "INTERNAL_ERROR"
}

func wantsJSON(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/api" || strings.HasPrefix(path, "/api/") || path == "/health"
}

func fallbackPage(code int, message string) string {
	if code == fiber.StatusNotFound {
		return "<h1>404 - Page Not Found</h1><a href='/'>Go Home</a>"
	}
	if code >= fiber.StatusInternalServerError {
		return "<h1>500 - Internal Server Error</h1><a href='/'>Go Home</a>"
	}
	return fmt.Sprintf("<h1>%d</h1><p>%s</p><a href='/admin'>Back</a>", code, html.EscapeString(message))
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func PayloadTooLarge(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusRequestEntityTooLarge, message)
}
