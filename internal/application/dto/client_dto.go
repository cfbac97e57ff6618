package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateClientRequest body para POST /api/clients. Datas em "YYYY-MM-DD".
type CreateClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Birthdate  string `json:"birthdate,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	ZipCode    string `json:"zipCode,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Segment    string `json:"segment,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Source     string `json:"source,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
// Não toca nos agregados de venda (totalVisits/totalSpent/lastVisit).
type UpdateClientRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Birthdate       string   `json:"birthdate,omitempty"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	ZipCode         string   `json:"zipCode,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Segment         string   `json:"segment,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Source          string   `json:"source,omitempty"`
	LastContactDate string   `json:"lastContactDate,omitempty"`
	NextFollowUp    string   `json:"nextFollowUp,omitempty"`
	AssignedTo      string   `json:"assignedTo,omitempty"`
}

// ClientResponse cliente nas respostas, com os agregados de CRM.
type ClientResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Birthdate       string          `json:"birthdate,omitempty"`
	Address         string          `json:"address,omitempty"`
	City            string          `json:"city,omitempty"`
	State           string          `json:"state,omitempty"`
	ZipCode         string          `json:"zipCode,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TotalVisits     int             `json:"totalVisits"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	LastVisit       string          `json:"lastVisit,omitempty"`
	Segment         string          `json:"segment,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Source          string          `json:"source,omitempty"`
	LifetimeValue   decimal.Decimal `json:"lifetimeValue"`
	AverageTicket   decimal.Decimal `json:"averageTicket"`
	LastContactDate string          `json:"lastContactDate,omitempty"`
	NextFollowUp    string          `json:"nextFollowUp,omitempty"`
	AssignedTo      string          `json:"assignedTo,omitempty"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ReconcileStatsResponse resposta de POST /api/clients/:id/reconcile:
// os agregados antes e depois de recalcular a partir do histórico de vendas.
type ReconcileStatsResponse struct {
	ClientID string            `json:"clientId"`
	Before   ClientStatsValues `json:"before"`
	After    ClientStatsValues `json:"after"`
	Changed  bool              `json:"changed"`
}

// ClientStatsValues trinca de agregados do cliente.
type ClientStatsValues struct {
	TotalVisits int             `json:"totalVisits"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	LastVisit   string          `json:"lastVisit,omitempty"`
}

const dateLayout = "2006-01-02"

// FormatDate devolve a data em "YYYY-MM-DD"; vazio para nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate interpreta "YYYY-MM-DD"; vazio vira nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToClientResponse converte a entidade.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Birthdate:       FormatDate(c.Birthdate),
		Address:         c.Address,
		City:            c.City,
		State:           c.State,
		ZipCode:         c.ZipCode,
		Notes:           c.Notes,
		TotalVisits:     c.TotalVisits,
		TotalSpent:      c.TotalSpent,
		LastVisit:       FormatDate(c.LastVisit),
		Segment:         c.Segment,
		Tags:            c.Tags,
		Source:          c.Source,
		LifetimeValue:   c.LifetimeValue,
		AverageTicket:   c.AverageTicket,
		LastContactDate: FormatDate(c.LastContactDate),
		NextFollowUp:    FormatDate(c.NextFollowUp),
		AssignedTo:      c.AssignedTo,
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
	}
}

// ToClientResponses converte a lista.
func ToClientResponses(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
