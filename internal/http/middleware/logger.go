package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one structured line.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
func Logger(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		args := []any{
			"request_id", rid,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds()) / 1000,
		}

		ctx := c.UserContext()
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error(ctx, "http_request", args...)
		case status >= fiber.StatusBadRequest:
			log.Warn(ctx, "http_request", args...)
		default:
			log.Info(ctx, "http_request", args...)
		}

		return err
	}
}
