package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// TxRunner executa a sequência do checkout passando repositórios atados ao
// mesmo escopo de execução. A implementação transacional serializa checkouts
// concorrentes sobre o mesmo produto; a sequencial reproduz o comportamento
// sem transação do sistema de origem (CHECKOUT_ATOMIC=false).
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
	) error) error
}

// StockLedger baixa de estoque chamada pelo checkout dentro da sua transação.
// Implementada por stock.MovementUseCase; garante que a baixa e o registro no
// livro de movimentações saiam do mesmo ponto de entrada.
type StockLedger interface {
	RegisterSaleOutInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		productID, saleID, userID string,
		quantity decimal.Decimal,
		now time.Time,
	) error
}
