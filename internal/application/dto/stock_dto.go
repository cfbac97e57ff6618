package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateMovementRequest body para POST /api/stock-movements.
// Em IN/OUT, quantity é o delta; em ADJUSTMENT é o estoque absoluto alvo.
type CreateMovementRequest struct {
	ProductID string          `json:"productId"`
	Type      string          `json:"type"` // IN | OUT | ADJUSTMENT
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	UserID    string          `json:"userId,omitempty"`
}

// MovementResponse movimentação nas respostas, com o nome do produto.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason,omitempty"`
	UserID      string          `json:"userId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MovementProductSnapshot estado do produto logo após a movimentação.
type MovementProductSnapshot struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
}

// CreateMovementResponse resposta 201 de POST /api/stock-movements.
type CreateMovementResponse struct {
	Movement MovementResponse        `json:"movement"`
	Product  MovementProductSnapshot `json:"product"`
}

// ToMovementResponse converte a entidade para o formato de resposta.
func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMovementResponses converte a lista.
func ToMovementResponses(movements []*entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

// ToMovementProductSnapshot recorta os campos de estoque do produto.
func ToMovementProductSnapshot(p *entity.Product) MovementProductSnapshot {
	return MovementProductSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
	}
}
