package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto: uso interno nos serviços do salão ou revenda no balcão.
const (
	ProductTypeService = "SERVICE"
	ProductTypeResale  = "RESALE"
)

// Product representa um produto do estoque do salão.
// CurrentStock é valor derivado: só muda através de movimentações (ver StockMovement);
// pode ser fracionário (produtos vendidos a granel, ex. ml de tintura).
type Product struct {
	ID           string
	Name         string
	Type         string // SERVICE | RESALE
	Category     string
	Brand        string
	SKU          string // único
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	MaxStock     decimal.Decimal
	Unit         string // UN, ML, G...
	CostPrice    decimal.Decimal
	SalePrice    *decimal.Decimal // nulo para produtos de uso interno
	Supplier     string
	Location     string
	Notes        string
	CreatedAt    time.Time
}
