package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateClientNoteRequest body para POST /api/clients/:id/notes.
type CreateClientNoteRequest struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`   // default NOTE
	UserID  string `json:"userId,omitempty"` // default: admin seed
}

// ClientNoteResponse nota de CRM nas respostas.
type ClientNoteResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientInteractionResponse evento da linha do tempo do cliente.
type ClientInteractionResponse struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"clientId"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        string           `json:"date"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToClientNoteResponse converte a entidade.
func ToClientNoteResponse(n *entity.ClientNote) ClientNoteResponse {
	return ClientNoteResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		UserID:    n.UserID,
		UserName:  n.UserName,
		Content:   n.Content,
		Type:      n.Type,
		CreatedAt: n.CreatedAt,
	}
}

// ToClientNoteResponses converte a lista.
func ToClientNoteResponses(notes []*entity.ClientNote) []ClientNoteResponse {
	out := make([]ClientNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, ToClientNoteResponse(n))
	}
	return out
}

// ToClientInteractionResponses converte a lista.
func ToClientInteractionResponses(interactions []*entity.ClientInteraction) []ClientInteractionResponse {
	out := make([]ClientInteractionResponse, 0, len(interactions))
	for _, i := range interactions {
		date := i.Date
		out = append(out, ClientInteractionResponse{
			ID:          i.ID,
			ClientID:    i.ClientID,
			Type:        i.Type,
			Description: i.Description,
			Amount:      i.Amount,
			Date:        FormatDate(&date),
			CreatedAt:   i.CreatedAt,
		})
	}
	return out
}
