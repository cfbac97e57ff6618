package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// ClientFilter filtros da listagem de clientes (apenas ativos).
type ClientFilter struct {
	Search  string // nome, email ou telefone (LIKE)
	Segment string
}

// ClientRepository porta de persistência de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	Update(client *entity.Client) error
	// UpdateStats grava os contadores denormalizados
	// (total_visits, total_spent, last_visit); lastVisit nil limpa a coluna.
	UpdateStats(id string, visits int, spent decimal.Decimal, lastVisit *time.Time) error
	List(filter ClientFilter) ([]*entity.Client, error)
	// Deactivate soft delete (active = false).
	Deactivate(id string) error
}
