package handlers

import (
	"telephysio/pkg/middleware"
	"telephysio/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseBody decodes and validates the request body into req. On failure it
// writes the 400 response and returns ok=false.
func parseBody(c *fiber.Ctx, req interface{}, message string) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": message,
		})
	}
	if errs := validation.Struct(req); errs != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  message,
			"fields": errs,
		})
	}
	return true, nil
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func getUserIDString(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(middleware.LocalUserID).(string)
	return userID, ok && userID != ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
