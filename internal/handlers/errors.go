package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/yourorg/registrocl/internal/models"
)

// writeError traduce los errores tipados a códigos HTTP. Es el único lugar
// donde un error se convierte en status.
func writeError(c *fiber.Ctx, err error) error {
	switch e := errors.Cause(err).(type) {
	case *models.ErrValidation:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Detail: e.Details})
	case *models.ErrAuthentication:
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: e.Error()})
	case *models.ErrConnection, *models.ErrStorage, *models.ErrUnexpected:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Detail: e.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Detail: models.NewErrUnexpected(err).Error(),
		})
	}
}
