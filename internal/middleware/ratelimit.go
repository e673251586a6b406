package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/yourorg/registrocl/internal/models"
)

// ============================================================================
// RATE LIMITING MIDDLEWARE
// ============================================================================
// Solo protege /login contra fuerza bruta. /registrar no tiene límite.

// LoginRateLimiter permite max requests por minuto por IP.
func LoginRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderRetryAfter, "60")
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Detail: "demasiados intentos de inicio de sesión, intenta de nuevo en un minuto",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
