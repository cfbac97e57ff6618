package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bunx-io/salonx-api/internal/application/sales"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Usado pelo livro de movimentações de estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheckout abre uma transação com todos os repositórios que o fechamento de
// venda escreve. Qualquer erro desfaz a venda inteira: itens, movimentações,
// pagamentos, lançamento financeiro e estatísticas do cliente.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewSaleRepository(tx),
		NewStockMovementRepository(tx),
		NewProductRepository(tx),
		NewTransactionRepository(tx),
		NewClientRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

var _ sales.TxRunner = (*SequentialRunner)(nil)

// SequentialRunner variante sem transação do runner de checkout
// (CHECKOUT_ATOMIC=false): cada escrita vai direto ao pool e um erro no meio
// deixa as escritas anteriores gravadas. Existe para paridade de comportamento
// com o sistema de origem; o default de produção é o TxRunner.
type SequentialRunner struct {
	pool *pgxpool.Pool
}

// NewSequentialRunner constrói o runner sequencial com o pool.
func NewSequentialRunner(pool *pgxpool.Pool) *SequentialRunner {
	return &SequentialRunner{pool: pool}
}

// RunCheckout executa fn com repositórios atados ao pool, sem transação.
func (r *SequentialRunner) RunCheckout(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) error) error {
	return fn(
		NewSaleRepository(r.pool),
		NewStockMovementRepository(r.pool),
		NewProductRepository(r.pool),
		NewTransactionRepository(r.pool),
		NewClientRepository(r.pool),
	)
}
