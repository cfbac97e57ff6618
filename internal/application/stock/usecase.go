package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// MovementUseCase mantém o livro de movimentações e o estoque derivado dos
// produtos. Toda escrita passa por aqui: uma movimentação inserida (append-only)
// seguida da atualização de products.current_stock, na mesma transação com
// bloqueio de linha (SELECT FOR UPDATE).
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewMovementUseCase constrói o caso de uso. productRepo e movementRepo são os
// adaptadores atados ao pool, usados para leituras fora de transação.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// MovementInput entrada para registrar uma movimentação.
// Em IN/OUT, Quantity é o delta (sempre positivo); em ADJUSTMENT é o valor
// absoluto alvo do estoque.
type MovementInput struct {
	ProductID string
	Type      entity.MovementKind
	Quantity  decimal.Decimal
	Reason    string
	UserID    string
}

// RecordMovement insere a movimentação e recalcula o estoque do produto.
// Exatamente duas escritas: o insert no livro e o update do produto.
// OUT acima do estoque atual falha com ErrInsufficientStock sem escrever nada.
func (uc *MovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, *entity.Product, error) {
	if input.ProductID == "" || !input.Type.Valid() || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}

	// Valida a existência do produto antes de abrir a transação
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:        entity.NewID("mov"),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		UserID:    input.UserID,
		CreatedAt: now,
	}

	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto para serializar leitura-modificação-escrita
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if input.Type == entity.MovementOut && locked.CurrentStock.LessThan(input.Quantity) {
			return domain.ErrInsufficientStock
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}

		newStock := input.Type.Apply(locked.CurrentStock, input.Quantity)
		if err := productRepo.UpdateStock(locked.ID, newStock); err != nil {
			return err
		}

		locked.CurrentStock = newStock
		updated = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	movement.ProductName = updated.Name
	return movement, updated, nil
}

// RegisterSaleOutInTx registra a saída de estoque de um item de venda usando os
// repositórios da transação do caller (o motor de checkout). Mantém a trilha de
// auditoria com a razão "Venda #<saleID>".
//
// A saída por venda não valida estoque mínimo: o balcão não bloqueia a venda e
// o estoque pode ficar negativo até o próximo ajuste.
func (uc *MovementUseCase) RegisterSaleOutInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID, saleID, userID string,
	quantity decimal.Decimal,
	now time.Time,
) error {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	movement := &entity.StockMovement{
		ID:        entity.NewID("mov"),
		ProductID: productID,
		Type:      entity.MovementOut,
		Quantity:  quantity,
		Reason:    fmt.Sprintf("Venda #%s", saleID),
		UserID:    userID,
		CreatedAt: now,
	}
	if err := movRepo.Create(movement); err != nil {
		return err
	}
	return productRepo.UpdateStock(productID, product.CurrentStock.Sub(quantity))
}

// ListMovements lista movimentações da mais recente para a mais antiga,
// com o nome do produto. productID vazio lista todas. Leitura pura.
func (uc *MovementUseCase) ListMovements(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByProduct(productID)
}
