package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Professional profissional do salão. CommissionRate é percentual (30 = 30%)
// aplicado sobre o preço dos atendimentos realizados.
type Professional struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Specialties    []string
	CommissionRate decimal.Decimal
	WorkSchedule   string // JSON livre com a grade de horários
	Active         bool
	CreatedAt      time.Time
}
