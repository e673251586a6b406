package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/registrocl/internal/models"
	"github.com/yourorg/registrocl/internal/validation"
)

// Authenticator verifica credenciales contra los usuarios registrados.
type Authenticator interface {
	Authenticate(ctx context.Context, correo, contrasena string) (*models.Usuario, error)
}

// TokenIssuer emite el token de sesión de un usuario autenticado.
type TokenIssuer interface {
	Issue(userID int64, correo string) (string, time.Time, error)
}

type AuthHandler struct {
	service Authenticator
	tokens  TokenIssuer
}

func NewAuthHandler(service Authenticator, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := validation.Login.Decode(c.Body(), &req); err != nil {
		return writeError(c, err)
	}

	usuario, err := h.service.Authenticate(c.UserContext(), req.Correo, req.Contrasena)
	if err != nil {
		return writeError(c, err)
	}

	token, expiresAt, err := h.tokens.Issue(usuario.ID, usuario.Correo)
	if err != nil {
		log.Printf("❌ Error firmando token: %v", err)
		return writeError(c, err)
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Token:     token,
		Usuario:   usuario.DTO(),
		ExpiresAt: expiresAt,
	})
}
