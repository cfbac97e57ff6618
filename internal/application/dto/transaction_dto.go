package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// TransactionRequest body para POST/PUT de /api/transactions.
// dueDate/paidDate em "YYYY-MM-DD".
type TransactionRequest struct {
	Type           string          `json:"type"` // INCOME | EXPENSE
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	DueDate        string          `json:"dueDate"`
	PaidDate       string          `json:"paidDate,omitempty"`
	ClientID       string          `json:"clientId,omitempty"`
	ProfessionalID string          `json:"professionalId,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// TransactionResponse lançamento financeiro nas respostas.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	DueDate        string          `json:"dueDate"`
	PaidDate       string          `json:"paidDate,omitempty"`
	ClientID       string          `json:"clientId,omitempty"`
	ProfessionalID string          `json:"professionalId,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToTransactionResponse converte a entidade.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		Type:           t.Type,
		Category:       t.Category,
		Description:    t.Description,
		Amount:         t.Amount,
		Status:         t.Status,
		PaymentMethod:  t.PaymentMethod,
		DueDate:        t.DueDate.Format(dateLayout),
		PaidDate:       FormatDate(t.PaidDate),
		ClientID:       t.ClientID,
		ProfessionalID: t.ProfessionalID,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTransactionResponses converte a lista.
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}
