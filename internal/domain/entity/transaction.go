package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos e status do livro financeiro.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"

	TransactionPending   = "PENDING"
	TransactionPaid      = "PAID"
	TransactionOverdue   = "OVERDUE"
	TransactionCancelled = "CANCELLED"

	// CategorySale categoria da transação gerada por uma venda do PDV.
	CategorySale = "SALE"
)

// Transaction lançamento financeiro (receita ou despesa).
// Toda venda COMPLETED gera exatamente um lançamento INCOME/PAID com categoria SALE.
type Transaction struct {
	ID             string
	Type           string // INCOME | EXPENSE
	Category       string
	Description    string
	Amount         decimal.Decimal
	Status         string // PENDING | PAID | OVERDUE | CANCELLED
	PaymentMethod  string
	DueDate        time.Time
	PaidDate       *time.Time
	ClientID       string
	ProfessionalID string
	Notes          string
	CreatedAt      time.Time
}
