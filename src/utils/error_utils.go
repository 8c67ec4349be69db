// error_utils.go
package utils

import (
	"Backend-Props/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleValidationError returns 422 with the per-field messages attached.
func HandleValidationError(c *fiber.Ctx, ve *models.ValidationError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
		Status:  fiber.StatusUnprocessableEntity,
		Message: "validation failed",
		Fields:  ve.Fields,
	})
}
