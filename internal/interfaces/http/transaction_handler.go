package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// TransactionHandler rotas do livro financeiro.
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler constrói o handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create cria um lançamento: POST /api/transactions.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Type == "" || in.Category == "" || in.Description == "" || in.DueDate == "" {
		return badRequest(c, "Tipo, categoria, descrição, valor e vencimento são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um lançamento: GET /api/transactions/:id.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Transação não encontrada")
	}
	return c.JSON(out)
}

// Update atualiza um lançamento: PUT /api/transactions/:id.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Transação não encontrada")
	}
	return c.JSON(out)
}

// List lista lançamentos: GET /api/transactions?type=...&status=...&startDate=...&endDate=...
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	startDate, err := dto.ParseDate(c.Query("startDate"))
	if err != nil {
		return badRequest(c, "Data inicial inválida")
	}
	endDate, err := dto.ParseDate(c.Query("endDate"))
	if err != nil {
		return badRequest(c, "Data final inválida")
	}
	filter := repository.TransactionFilter{
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		StartDate: startDate,
		EndDate:   endDate,
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Delete remove um lançamento: DELETE /api/transactions/:id.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Transação removida com sucesso"})
}
