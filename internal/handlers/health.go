package handlers

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Connector abre una conexión nueva; se usa solo para verificar la base de datos.
// Es la misma forma que registro.Connector, declarada aquí por quien la consume.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, error)
}

// HealthResponse representa el estado de salud del sistema
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    int64             `json:"uptime"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version,omitempty"`
}

type HealthHandler struct {
	connector Connector
	startTime time.Time
}

func NewHealthHandler(connector Connector) *HealthHandler {
	return &HealthHandler{connector: connector, startTime: time.Now()}
}

// Health handles GET /health. Abre y cierra su propia conexión.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	conn, err := h.connector.Connect(ctx)
	if err != nil {
		services["database"] = "unhealthy: " + err.Error()
		overall = "degraded"
	} else {
		services["database"] = "healthy"
		_ = conn.Close()
	}

	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Uptime:    int64(time.Since(h.startTime).Seconds()),
		Services:  services,
		Version:   os.Getenv("APP_VERSION"),
	})
}
