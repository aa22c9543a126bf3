package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// SubmitContact godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param payload body object false "name, email, subject, message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := service.ParseContactPayload(c.Body())
		switch {
		case errors.Is(err, service.ErrInvalidJSON):
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", err.Error())
		case errors.Is(err, service.ErrObjectRequired):
			return writeError(c, fiber.StatusBadRequest, "OBJECT_REQUIRED", err.Error())
		case err != nil:
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "Bad request.")
		}

		if _, err := svc.Submit(c.UserContext(), in); err != nil {
			var missing *service.MissingFieldsError
			if errors.As(err, &missing) {
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", missing.Error())
			}
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"status": "received"})
	}
}
