package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/service"
)

// StorageUnavailableDetail is the fixed message for every content store failure.
const StorageUnavailableDetail = "Content store unavailable. Check the database connection and run migrations."

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_JSON", "STORAGE_UNAVAILABLE")
// - detail: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, detail string) error {
	return c.Status(status).JSON(errorPayload{
		Detail:    detail,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError maps a service failure to its response.
func writeServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrStorageUnavailable) {
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", StorageUnavailableDetail)
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "Bad request.")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "Not found.")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "Method not allowed.")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "Request body too large.")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.")
		}
	}
}
