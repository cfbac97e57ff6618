package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service serviço do catálogo (corte, coloração, manicure...).
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int // minutos
	Category    string
	Active      bool
	CreatedAt   time.Time
}
