package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// StockMovementRepository porta do livro de movimentações (append-only):
// só insere e lê, nunca atualiza nem remove.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// GetByID devolve a movimentação com o nome do produto desnormalizado.
	GetByID(id string) (*entity.StockMovement, error)
	// ListByProduct lista movimentações da mais recente para a mais antiga.
	// productID vazio lista todas.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
