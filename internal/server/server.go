// Package server construye la aplicación HTTP una sola vez al arrancar el
// proceso. Después de New no se registran rutas ni middleware.
package server

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"
	"github.com/yourorg/registrocl/internal/auth"
	"github.com/yourorg/registrocl/internal/config"
	"github.com/yourorg/registrocl/internal/db"
	"github.com/yourorg/registrocl/internal/handlers"
	"github.com/yourorg/registrocl/internal/middleware"
	"github.com/yourorg/registrocl/internal/models"
	"github.com/yourorg/registrocl/internal/password"
	"github.com/yourorg/registrocl/internal/registro"
	"github.com/yourorg/registrocl/internal/routes"
)

const appName = "registrocl"

// Server es el ciclo de vida del proceso HTTP.
type Server struct {
	app  *fiber.App
	addr string
}

// Option ajusta la construcción del servidor.
type Option func(*options)

type options struct {
	accessLog io.Writer
}

// WithAccessLog redirige el log de accesos (por defecto stdout).
func WithAccessLog(w io.Writer) Option {
	return func(o *options) { o.accessLog = w }
}

// New arma el servidor completo a partir de la configuración.
func New(cfg config.Config, opts ...Option) *Server {
	o := options{accessLog: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	connector := db.NewConnector(cfg.DB)
	service := registro.NewService(connector, connector.Dialect(), password.NewBcrypt(cfg.BcryptCost))
	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		Output: o.accessLog,
	}))
	app.Use(middleware.CORS())

	routes.Register(app, routes.Handlers{
		Registro: handlers.NewRegistroHandler(service),
		Auth:     handlers.NewAuthHandler(service, issuer),
		Health:   handlers.NewHealthHandler(connector),
	}, cfg.LoginRateLimit)

	return &Server{app: app, addr: cfg.Addr()}
}

// App expone la aplicación Fiber (usado en tests con app.Test).
func (s *Server) App() *fiber.App {
	return s.app
}

// Addr es la dirección donde escucha Listen.
func (s *Server) Addr() string {
	return s.addr
}

// Listen bloquea atendiendo requests hasta que se llame a Shutdown.
func (s *Server) Listen() error {
	return s.app.Listen(s.addr)
}

// Shutdown espera a que terminen los requests en curso y cierra el listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler da a los errores del framework (404, 405, panics recuperados)
// la misma forma {"detail": "..."} que el resto de la API.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Detail: utils.StatusMessage(fe.Code)})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Detail: models.NewErrUnexpected(err).Error(),
	})
}
