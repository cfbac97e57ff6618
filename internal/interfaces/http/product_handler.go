package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ProductHandler rotas do catálogo de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create cria um produto: POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Name == "" || in.Type == "" || in.Category == "" || in.SKU == "" || !in.CostPrice.GreaterThan(decimal.Zero) {
		return badRequest(c, "Nome, tipo, categoria, SKU e preço de custo são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um produto: GET /api/products/:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Produto não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um produto: PUT /api/products/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Produto não encontrado")
	}
	return c.JSON(out)
}

// List lista produtos: GET /api/products?category=...&type=...&lowStock=true.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		LowStock: c.Query("lowStock") == "true",
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Delete remove um produto: DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produto removido com sucesso"})
}
