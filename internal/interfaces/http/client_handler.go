package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ClientHandler rotas de clientes, incluindo a reconciliação dos agregados.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create cria um cliente: POST /api/clients.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return badRequest(c, "Nome, email e telefone são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um cliente: GET /api/clients/:id.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Cliente não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um cliente: PUT /api/clients/:id.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Cliente não encontrado")
	}
	return c.JSON(out)
}

// List lista clientes ativos: GET /api/clients?search=...&segment=...
func (h *ClientHandler) List(c *fiber.Ctx) error {
	filter := repository.ClientFilter{
		Search:  c.Query("search"),
		Segment: c.Query("segment"),
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Deactivate desativa um cliente: DELETE /api/clients/:id.
func (h *ClientHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente desativado com sucesso"})
}

// Reconcile recalcula os agregados de venda: POST /api/clients/:id/reconcile.
func (h *ClientHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.uc.ReconcileStats(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
