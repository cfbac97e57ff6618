package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/domain"
)

// ReportsHandler rota dos relatórios gerenciais.
type ReportsHandler struct {
	uc *analytics.ReportsUseCase
}

// NewReportsHandler constrói o handler.
func NewReportsHandler(uc *analytics.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Generate monta o relatório pedido:
// GET /api/reports?type=...&period=...&startDate=...&endDate=...
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	r := analytics.ResolveDateRange(c.Query("period"), c.Query("startDate"), c.Query("endDate"))
	out, err := h.uc.Generate(c.Context(), c.Query("type"), r)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Tipo de relatório inválido")
		}
		return fail(c, err)
	}
	return c.JSON(out)
}
