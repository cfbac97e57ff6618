package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
)

// CommissionsHandler rotas de comissões de profissionais.
type CommissionsHandler struct {
	uc *analytics.CommissionsUseCase
}

// NewCommissionsHandler constrói o handler.
func NewCommissionsHandler(uc *analytics.CommissionsUseCase) *CommissionsHandler {
	return &CommissionsHandler{uc: uc}
}

// Get devolve o resumo geral ou o detalhe de um profissional:
// GET /api/commissions[?professionalId=...][&period=...][&status=...]
func (h *CommissionsHandler) Get(c *fiber.Ctx) error {
	r := analytics.ResolveDateRange(c.Query("period"), c.Query("startDate"), c.Query("endDate"))
	status := c.Query("status")

	if professionalID := c.Query("professionalId"); professionalID != "" {
		out, err := h.uc.ByProfessional(c.Context(), professionalID, r, status)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.Overview(c.Context(), r, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Calculate simula a comissão de um atendimento: POST /api/commissions.
func (h *CommissionsHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateCommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.ProfessionalID == "" || in.ServicePrice == nil {
		return badRequest(c, "Campos obrigatórios: professionalId, servicePrice")
	}
	out, err := h.uc.Calculate(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Profissional não encontrado")
		}
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateRate atualiza a taxa de comissão: PUT /api/commissions.
func (h *CommissionsHandler) UpdateRate(c *fiber.Ctx) error {
	var in dto.UpdateCommissionRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.ProfessionalID == "" || in.CommissionRate == nil {
		return badRequest(c, "Campos obrigatórios: professionalId, commissionRate")
	}
	out, err := h.uc.UpdateRate(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Taxa de comissão deve estar entre 0 e 100")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Profissional não encontrado")
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Taxa de comissão atualizada com sucesso",
		"professional": out,
	})
}
