package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/sales"
)

// SaleHandler rotas do PDV: fechamento e listagem de vendas.
type SaleHandler struct {
	uc *sales.CheckoutUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.CheckoutUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create fecha uma venda: POST /api/sales.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if len(in.Items) == 0 {
		return badRequest(c, "A venda deve ter pelo menos um item")
	}
	if len(in.Payments) == 0 {
		return badRequest(c, "A venda deve ter pelo menos uma forma de pagamento")
	}

	input := sales.CheckoutInput{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Subtotal:       in.Subtotal,
		Discount:       in.Discount,
		Total:          in.Total,
		Notes:          in.Notes,
		UserID:         in.UserID,
		Items:          make([]sales.CheckoutItem, 0, len(in.Items)),
		Payments:       make([]sales.CheckoutPayment, 0, len(in.Payments)),
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, sales.CheckoutItem{
			Type:     item.Type,
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Discount: item.Discount,
			Total:    item.Total,
		})
	}
	for _, payment := range in.Payments {
		input.Payments = append(input.Payments, sales.CheckoutPayment{
			Method: payment.Method,
			Amount: payment.Amount,
		})
	}

	sale, err := h.uc.Checkout(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}
	salesCompleted.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale))
}

// List lista vendas: GET /api/sales?startDate=...&endDate=...
func (h *SaleHandler) List(c *fiber.Ctx) error {
	startDate, err := dto.ParseDate(c.Query("startDate"))
	if err != nil {
		return badRequest(c, "startDate inválido")
	}
	endDate, err := dto.ParseDate(c.Query("endDate"))
	if err != nil {
		return badRequest(c, "endDate inválido")
	}

	list, err := h.uc.ListSales(c.Context(), startDate, endDate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToSaleResponses(list))
}
