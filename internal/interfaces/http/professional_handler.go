package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
)

// ProfessionalHandler rotas de profissionais.
type ProfessionalHandler struct {
	uc *usecase.ProfessionalUseCase
}

// NewProfessionalHandler constrói o handler.
func NewProfessionalHandler(uc *usecase.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{uc: uc}
}

// Create cria um profissional: POST /api/professionals.
func (h *ProfessionalHandler) Create(c *fiber.Ctx) error {
	var in dto.ProfessionalRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Name == "" {
		return badRequest(c, "Nome é obrigatório")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um profissional: GET /api/professionals/:id.
func (h *ProfessionalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Profissional não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um profissional: PUT /api/professionals/:id.
func (h *ProfessionalHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfessionalRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Profissional não encontrado")
	}
	return c.JSON(out)
}

// List lista profissionais: GET /api/professionals?active=true.
func (h *ProfessionalHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("active") == "true")
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Deactivate desativa um profissional: DELETE /api/professionals/:id.
func (h *ProfessionalHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Profissional desativado com sucesso"})
}
