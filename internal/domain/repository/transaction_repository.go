package repository

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// TransactionFilter filtros da listagem de lançamentos financeiros.
type TransactionFilter struct {
	Type      string // vazio ou "ALL" = todos
	Status    string
	StartDate *time.Time // sobre due_date
	EndDate   *time.Time
}

// TransactionRepository porta de persistência do livro financeiro.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(txn *entity.Transaction) error
	// List ordena por due_date DESC, created_at DESC.
	List(filter TransactionFilter) ([]*entity.Transaction, error)
	Delete(id string) error
}
