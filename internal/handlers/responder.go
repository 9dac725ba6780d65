package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "petshop/internal/errors"
)

// respondError translates a service error into the HTTP status and
// structured body the REST contract defines. Unknown errors are treated
// as upstream failures so callers know they may retry.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := apperrors.IsValidationError(err); ok {
		body := fiber.Map{"message": ve.Message}
		if len(ve.Details) > 0 {
			body["details"] = ve.Details
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	if nf, ok := apperrors.IsNotFound(err); ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": nf.Error(),
		})
	}
	if up, ok := apperrors.IsUnavailablePet(err); ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": up.Error(),
			"pet_id":  up.PetID,
		})
	}
	if it, ok := apperrors.IsInvalidTransition(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": it.Error(),
			"from":    it.From,
			"to":      it.To,
		})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "service temporarily unavailable",
		"error":   err.Error(),
	})
}
