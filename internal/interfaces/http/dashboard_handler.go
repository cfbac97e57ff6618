package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
)

// DashboardHandler rota das métricas da tela inicial.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics devolve as métricas do dia: GET /api/dashboard/metrics.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	out, err := h.uc.Metrics(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
