package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// AppointmentRequest body para POST/PUT de /api/appointments.
// date em "YYYY-MM-DD", time em "HH:MM".
type AppointmentRequest struct {
	ClientID         string          `json:"clientId"`
	ClientName       string          `json:"clientName,omitempty"`
	ProfessionalID   string          `json:"professionalId"`
	ProfessionalName string          `json:"professionalName,omitempty"`
	ServiceID        string          `json:"serviceId"`
	ServiceName      string          `json:"serviceName,omitempty"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Duration         int             `json:"duration"`
	Price            decimal.Decimal `json:"price"`
	Status           string          `json:"status,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// AppointmentResponse agendamento nas respostas, com os nomes desnormalizados.
type AppointmentResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"clientId"`
	ClientName       string          `json:"clientName,omitempty"`
	ProfessionalID   string          `json:"professionalId"`
	ProfessionalName string          `json:"professionalName,omitempty"`
	ServiceID        string          `json:"serviceId"`
	ServiceName      string          `json:"serviceName,omitempty"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Duration         int             `json:"duration"`
	Price            decimal.Decimal `json:"price"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToAppointmentResponse converte a entidade.
func ToAppointmentResponse(a *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		ProfessionalID:   a.ProfessionalID,
		ProfessionalName: a.ProfessionalName,
		ServiceID:        a.ServiceID,
		ServiceName:      a.ServiceName,
		Date:             a.Date.Format(dateLayout),
		Time:             a.Time,
		Duration:         a.Duration,
		Price:            a.Price,
		Status:           a.Status,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
	}
}

// ToAppointmentResponses converte a lista.
func ToAppointmentResponses(appointments []*entity.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, ToAppointmentResponse(a))
	}
	return out
}
