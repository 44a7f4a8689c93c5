package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// lookupError maps a failed direct entity lookup to 404, anything else to 500.
func lookupError(c *fiber.Ctx, err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": entity + " not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// serviceError is for write paths: 404 for a missing record, otherwise the
// service error itself (validation failures etc.) as a client error.
func serviceError(c *fiber.Ctx, err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": entity + " not found"})
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}
