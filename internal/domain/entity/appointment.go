package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de agendamento.
const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment agendamento da agenda. Nomes de cliente, profissional e serviço
// são desnormalizados para a grade carregar sem joins.
type Appointment struct {
	ID               string
	ClientID         string
	ClientName       string
	ProfessionalID   string
	ProfessionalName string
	ServiceID        string
	ServiceName      string
	Date             time.Time
	Time             string // "HH:MM"
	Duration         int    // minutos
	Price            decimal.Decimal
	Status           string
	Notes            string
	CreatedAt        time.Time
}
