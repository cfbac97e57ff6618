package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// StockHandler rotas do livro de movimentações de estoque.
type StockHandler struct {
	uc *stock.MovementUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create registra uma movimentação: POST /api/stock-movements.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.ProductID == "" || in.Type == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return badRequest(c, "Produto, tipo e quantidade são obrigatórios")
	}

	movement, product, err := h.uc.RecordMovement(c.Context(), stock.MovementInput{
		ProductID: in.ProductID,
		Type:      entity.MovementKind(in.Type),
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		UserID:    in.UserID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Produto não encontrado")
		}
		return fail(c, err)
	}
	stockMovements.WithLabelValues(string(movement.Type)).Inc()

	return c.Status(fiber.StatusCreated).JSON(dto.CreateMovementResponse{
		Movement: dto.ToMovementResponse(movement),
		Product:  dto.ToMovementProductSnapshot(product),
	})
}

// List lista movimentações: GET /api/stock-movements?productId=...
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListMovements(c.Context(), c.Query("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToMovementResponses(list))
}
