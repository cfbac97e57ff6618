package repository

import (
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// ProductFilter filtros da listagem de produtos.
type ProductFilter struct {
	Category string // vazio ou "ALL" = todas
	Type     string // vazio ou "ALL" = todos
	LowStock bool   // current_stock <= min_stock
}

// ProductRepository porta de persistência de produtos.
// CurrentStock nunca é alterado por Update; só por UpdateStock, chamado pelo
// livro de estoque e pelo motor de vendas dentro das suas transações.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate carrega o produto bloqueando a linha (SELECT FOR UPDATE).
	// Fora de transação comporta-se como GetByID.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(id string, stock decimal.Decimal) error
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}
