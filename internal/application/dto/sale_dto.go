package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateSaleRequest body para POST /api/sales (fechamento do PDV).
// subtotal/discount/total chegam calculados pelo frontend.
type CreateSaleRequest struct {
	ClientID       string               `json:"clientId,omitempty"`
	ProfessionalID string               `json:"professionalId,omitempty"`
	Subtotal       decimal.Decimal      `json:"subtotal"`
	Discount       decimal.Decimal      `json:"discount"`
	Total          decimal.Decimal      `json:"total"`
	Notes          string               `json:"notes,omitempty"`
	UserID         string               `json:"userId,omitempty"`
	Items          []SaleItemRequest    `json:"items"`
	Payments       []SalePaymentRequest `json:"payments"`
}

// SaleItemRequest linha do carrinho.
type SaleItemRequest struct {
	Type     string          `json:"type"` // SERVICE | PRODUCT
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// SalePaymentRequest forma de pagamento do carrinho.
type SalePaymentRequest struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleResponse venda nas respostas, com itens e pagamentos quando carregados.
type SaleResponse struct {
	ID             string                `json:"id"`
	ClientID       string                `json:"clientId,omitempty"`
	ProfessionalID string                `json:"professionalId,omitempty"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Discount       decimal.Decimal       `json:"discount"`
	Total          decimal.Decimal       `json:"total"`
	Status         string                `json:"status"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	Items          []SaleItemResponse    `json:"items"`
	Payments       []SalePaymentResponse `json:"payments"`
}

// SaleItemResponse item da venda com os snapshots de nome e preço.
type SaleItemResponse struct {
	ID       string          `json:"id"`
	SaleID   string          `json:"saleId"`
	Type     string          `json:"type"`
	ItemID   string          `json:"itemId"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// SalePaymentResponse pagamento da venda.
type SalePaymentResponse struct {
	ID     string          `json:"id"`
	SaleID string          `json:"saleId"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// ToSaleResponse converte a entidade (itens e pagamentos incluídos).
func ToSaleResponse(s *entity.Sale) SaleResponse {
	resp := SaleResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		ProfessionalID: s.ProfessionalID,
		Subtotal:       s.Subtotal,
		Discount:       s.Discount,
		Total:          s.Total,
		Status:         s.Status,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		Items:          make([]SaleItemResponse, 0, len(s.Items)),
		Payments:       make([]SalePaymentResponse, 0, len(s.Payments)),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:       item.ID,
			SaleID:   item.SaleID,
			Type:     item.Type,
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
			Discount: item.Discount,
			Total:    item.Total,
		})
	}
	for _, payment := range s.Payments {
		resp.Payments = append(resp.Payments, SalePaymentResponse{
			ID:     payment.ID,
			SaleID: payment.SaleID,
			Method: payment.Method,
			Amount: payment.Amount,
		})
	}
	return resp
}

// ToSaleResponses converte a lista (vendas sem filhos carregados).
func ToSaleResponses(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
