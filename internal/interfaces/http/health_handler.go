package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
)

// Pinger comprueba que el almacenamiento responde.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responde GET /health (público).
type HealthHandler struct {
	storage string
	pinger  Pinger
}

// NewHealthHandler construye el handler; storage es el driver configurado.
func NewHealthHandler(storage string, pinger Pinger) *HealthHandler {
	return &HealthHandler{storage: storage, pinger: pinger}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Storage: h.storage})
		}
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Storage: h.storage})
}
