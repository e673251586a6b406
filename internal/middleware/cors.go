package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var allMethods = strings.Join([]string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodHead,
	fiber.MethodPut,
	fiber.MethodDelete,
	fiber.MethodPatch,
	fiber.MethodOptions,
}, ",")

// CORS permite cualquier origen, método y header, con credenciales.
// Con credenciales el origen no puede ser "*", así que se refleja el del
// request; sin AllowHeaders se reflejan los headers pedidos en el preflight.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     allMethods,
		AllowCredentials: true,
	})
}
