package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segmentos de CRM.
const (
	SegmentNew      = "NEW"
	SegmentRegular  = "REGULAR"
	SegmentVIP      = "VIP"
	SegmentInactive = "INACTIVE"
)

// Client cliente do salão. TotalVisits/TotalSpent/LastVisit são agregados
// denormalizados mantidos incrementalmente pelo motor de vendas; a recomposição
// a partir do histórico fica na reconciliação fora do caminho quente.
type Client struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Birthdate       *time.Time
	Address         string
	City            string
	State           string
	ZipCode         string
	Notes           string
	TotalVisits     int
	TotalSpent      decimal.Decimal
	LastVisit       *time.Time
	Segment         string
	Tags            []string
	Source          string
	LifetimeValue   decimal.Decimal
	AverageTicket   decimal.Decimal
	LastContactDate *time.Time
	NextFollowUp    *time.Time
	AssignedTo      string // UserID responsável
	Active          bool
	CreatedAt       time.Time
}
