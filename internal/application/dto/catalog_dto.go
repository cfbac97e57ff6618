package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// ── Serviços ─────────────────────────────────────────────────────────────────

// ServiceRequest body para POST/PUT de /api/services.
type ServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Category    string          `json:"category,omitempty"`
	Active      *bool           `json:"active,omitempty"`
}

// ServiceResponse serviço do catálogo nas respostas.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Category    string          `json:"category,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToServiceResponse converte a entidade.
func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    s.Category,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

// ToServiceResponses converte a lista.
func ToServiceResponses(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ToServiceResponse(s))
	}
	return out
}

// ── Profissionais ────────────────────────────────────────────────────────────

// ProfessionalRequest body para POST/PUT de /api/professionals.
type ProfessionalRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Specialties    []string        `json:"specialties,omitempty"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	WorkSchedule   string          `json:"workSchedule,omitempty"`
	Active         *bool           `json:"active,omitempty"`
}

// ProfessionalResponse profissional nas respostas.
type ProfessionalResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Specialties    []string        `json:"specialties,omitempty"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	WorkSchedule   string          `json:"workSchedule,omitempty"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToProfessionalResponse converte a entidade.
func ToProfessionalResponse(p *entity.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Specialties:    p.Specialties,
		CommissionRate: p.CommissionRate,
		WorkSchedule:   p.WorkSchedule,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
	}
}

// ToProfessionalResponses converte a lista.
func ToProfessionalResponses(professionals []*entity.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(professionals))
	for _, p := range professionals {
		out = append(out, ToProfessionalResponse(p))
	}
	return out
}
