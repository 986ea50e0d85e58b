package handlers

import (
	"log/slog"

	"github.com/foundercollab/backend/internal/database"
	"github.com/foundercollab/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// storeError maps store-layer failures onto responses: a missing table means
// the schema was never provisioned and answers 503 setup-required, anything
// else is logged and answered as a generic 500.
func storeError(c *fiber.Ctx, err error, message string) error {
	if database.IsSchemaMissing(err) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Database setup required",
		})
	}
	slog.Error(message, "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
