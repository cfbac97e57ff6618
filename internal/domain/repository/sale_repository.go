package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// ClientSalesStats agregados recalculados a partir do histórico de vendas,
// usados pela reconciliação dos contadores do cliente.
type ClientSalesStats struct {
	Visits    int
	Spent     decimal.Decimal
	LastVisit *time.Time
}

// SaleRepository porta de persistência de vendas e seus filhos.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	CreatePayment(payment *entity.SalePayment) error
	// GetByID devolve a venda com itens e pagamentos carregados.
	GetByID(id string) (*entity.Sale, error)
	// List devolve vendas (sem filhos) filtradas por data de criação, mais recentes primeiro.
	List(startDate, endDate *time.Time) ([]*entity.Sale, error)
	// StatsByClient recalcula visitas/total gasto/última visita do cliente
	// a partir das vendas COMPLETED.
	StatsByClient(clientID string) (*ClientSalesStats, error)
}
