package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda. O motor de checkout só produz COMPLETED;
// PENDING/CANCELLED existem no vocabulário mas nenhum fluxo os gera hoje.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusPending   = "PENDING"
	SaleStatusCancelled = "CANCELLED"
)

// Tipos de item de venda.
const (
	SaleItemService = "SERVICE"
	SaleItemProduct = "PRODUCT"
)

// Formas de pagamento aceitas no PDV.
const (
	PaymentMoney      = "MONEY"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentPix        = "PIX"
	PaymentTransfer   = "TRANSFER"
)

// Sale venda fechada no PDV. Criada com os filhos (itens e pagamentos) e
// imutável depois disso, exceto por mudança de status.
type Sale struct {
	ID             string
	ClientID       string // opcional (venda avulsa)
	ProfessionalID string // opcional
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal // subtotal - discount; aceito como veio do caller
	Status         string
	Notes          string
	CreatedAt      time.Time

	Items    []SaleItem
	Payments []SalePayment
}

// SaleItem linha do carrinho. Nome e preço são snapshots do momento da venda:
// editar o catálogo depois não pode alterar vendas históricas.
type SaleItem struct {
	ID       string
	SaleID   string
	Type     string // SERVICE | PRODUCT
	ItemID   string // referência a services ou products
	ItemName string
	Quantity decimal.Decimal
	Price    decimal.Decimal // preço unitário no momento da venda
	Discount decimal.Decimal
	Total    decimal.Decimal // quantity*price - discount
}

// SalePayment pagamento de uma venda. Várias formas podem compor a mesma venda
// (pagamento dividido); a soma não é conferida contra o total no fechamento.
type SalePayment struct {
	ID     string
	SaleID string
	Method string
	Amount decimal.Decimal
}
