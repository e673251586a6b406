package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/registrocl/internal/models"
	"github.com/yourorg/registrocl/internal/validation"
)

// Registrar es la operación de registro que expone RegistroHandler.
type Registrar interface {
	Register(ctx context.Context, req models.RegistroRequest) (*models.Usuario, error)
}

type RegistroHandler struct {
	service Registrar
}

func NewRegistroHandler(service Registrar) *RegistroHandler {
	return &RegistroHandler{service: service}
}

// Registrar handles POST /registrar.
// Responde la fila insertada completa, incluido el hash de la contraseña.
func (h *RegistroHandler) Registrar(c *fiber.Ctx) error {
	var req models.RegistroRequest
	if err := validation.Registro.Decode(c.Body(), &req); err != nil {
		return writeError(c, err)
	}

	usuario, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(usuario)
}
