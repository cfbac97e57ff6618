package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
// currentStock é apenas o saldo inicial; depois da criação só muda via movimentações.
type CreateProductRequest struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"` // SERVICE | RESALE
	Category     string           `json:"category"`
	Brand        string           `json:"brand,omitempty"`
	SKU          string           `json:"sku"`
	CurrentStock decimal.Decimal  `json:"currentStock"`
	MinStock     decimal.Decimal  `json:"minStock"`
	MaxStock     decimal.Decimal  `json:"maxStock"`
	Unit         string           `json:"unit,omitempty"`
	CostPrice    decimal.Decimal  `json:"costPrice"`
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	Supplier     string           `json:"supplier,omitempty"`
	Location     string           `json:"location,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// Não carrega currentStock: o estoque só muda pelo livro de movimentações.
type UpdateProductRequest struct {
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Category  string           `json:"category"`
	Brand     string           `json:"brand,omitempty"`
	SKU       string           `json:"sku"`
	MinStock  decimal.Decimal  `json:"minStock"`
	MaxStock  decimal.Decimal  `json:"maxStock"`
	Unit      string           `json:"unit,omitempty"`
	CostPrice decimal.Decimal  `json:"costPrice"`
	SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
	Supplier  string           `json:"supplier,omitempty"`
	Location  string           `json:"location,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// ProductResponse produto nas respostas.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Category     string           `json:"category"`
	Brand        string           `json:"brand,omitempty"`
	SKU          string           `json:"sku"`
	CurrentStock decimal.Decimal  `json:"currentStock"`
	MinStock     decimal.Decimal  `json:"minStock"`
	MaxStock     decimal.Decimal  `json:"maxStock"`
	Unit         string           `json:"unit,omitempty"`
	CostPrice    decimal.Decimal  `json:"costPrice"`
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	Supplier     string           `json:"supplier,omitempty"`
	Location     string           `json:"location,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToProductResponse converte a entidade.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		Category:     p.Category,
		Brand:        p.Brand,
		SKU:          p.SKU,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Unit:         p.Unit,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		Supplier:     p.Supplier,
		Location:     p.Location,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProductResponses converte a lista.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
