package stock

import (
	"context"

	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que a inserção da movimentação e a
// atualização do estoque derivado sejam atômicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
