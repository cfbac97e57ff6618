package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
)

// ServiceHandler rotas do catálogo de serviços.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler constrói o handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create cria um serviço: POST /api/services.
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Name == "" || in.Duration <= 0 {
		return badRequest(c, "Nome, preço e duração são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um serviço: GET /api/services/:id.
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Serviço não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um serviço: PUT /api/services/:id.
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Serviço não encontrado")
	}
	return c.JSON(out)
}

// List lista serviços: GET /api/services?active=true.
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("active") == "true")
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Deactivate desativa um serviço: DELETE /api/services/:id.
func (h *ServiceHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Serviço desativado com sucesso"})
}
