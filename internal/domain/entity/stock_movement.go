package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo de movimentação de estoque.
// A semântica da quantidade é assimétrica: em IN/OUT ela é um delta,
// em ADJUSTMENT é o valor absoluto alvo do estoque. Apply torna isso explícito.
type MovementKind string

const (
	MovementIn         MovementKind = "IN"
	MovementOut        MovementKind = "OUT"
	MovementAdjustment MovementKind = "ADJUSTMENT"
)

// Valid informa se o tipo é conhecido.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// Apply devolve o novo estoque resultante de aplicar a movimentação sobre current.
// IN soma, OUT subtrai, ADJUSTMENT substitui pelo valor informado.
func (k MovementKind) Apply(current, quantity decimal.Decimal) decimal.Decimal {
	switch k {
	case MovementIn:
		return current.Add(quantity)
	case MovementOut:
		return current.Sub(quantity)
	case MovementAdjustment:
		return quantity
	}
	return current
}

// StockMovement registro imutável do livro de movimentações (append-only).
// Nunca é atualizado nem removido; a ordem de criação é a trilha de auditoria.
type StockMovement struct {
	ID        string
	ProductID string
	Type      MovementKind
	Quantity  decimal.Decimal // sempre positiva; o sinal vem do tipo
	Reason    string
	UserID    string // opcional
	CreatedAt time.Time

	// ProductName desnormalizado no join da listagem.
	ProductName string
}
