package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/registrocl/internal/handlers"
	"github.com/yourorg/registrocl/internal/middleware"
)

// Handlers agrupa los handlers que expone la API.
type Handlers struct {
	Registro *handlers.RegistroHandler
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
}

// Register monta las rutas sobre app. Se llama una sola vez al construir el servidor.
func Register(app *fiber.App, h Handlers, loginRateLimit int) {
	app.Get("/health", h.Health.Health)

	// ============================================================================
	// REGISTRO DE USUARIOS
	// ============================================================================
	app.Post("/registrar", h.Registro.Registrar)
	// POST /registrar
	// Body: {nombre, apellido, cedula, telefono, fecha, genero, correo, contrasena}
	// Retorna: la fila insertada en usuarios (incluye el hash de la contraseña)

	// ============================================================================
	// AUTENTICACIÓN (con rate limiting estricto)
	// ============================================================================
	app.Post("/login", middleware.LoginRateLimiter(loginRateLimit), h.Auth.Login)
	// POST /login
	// Body: {correo, contrasena}
	// Retorna: {token, usuario, expires_at}
}
