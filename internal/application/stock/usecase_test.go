package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// fakeProductRepo repositório de produtos em memória.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stockValue decimal.Decimal) error {
	r.products[id].CurrentStock = stockValue
	return nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// fakeMovementRepo livro de movimentações em memória (append-only).
type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.movements = append(r.movements, movement)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		if productID == "" || r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

// fakeTxRunner executa o callback diretamente com os fakes, sem transação.
type fakeTxRunner struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movRepo, r.productRepo)
}

func newShampoo(current string) *entity.Product {
	return &entity.Product{
		ID:           "prd-1",
		Name:         "Shampoo Profissional 1L",
		Type:         "RESALE",
		Category:     "Cabelo",
		SKU:          "SH-001",
		CurrentStock: decimal.RequireFromString(current),
		MinStock:     decimal.NewFromInt(5),
		CreatedAt:    time.Now(),
	}
}

func newMovementUseCase(products ...*entity.Product) (*stock.MovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{movRepo: movRepo, productRepo: productRepo}
	return stock.NewMovementUseCase(runner, productRepo, movRepo), productRepo, movRepo
}

func TestRecordMovement_EntradaSomaEstoque(t *testing.T) {
	uc, productRepo, movRepo := newMovementUseCase(newShampoo("10"))

	movement, product, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-1",
		Type:      entity.MovementIn,
		Quantity:  decimal.NewFromInt(4),
		Reason:    "Reposição do fornecedor",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(14).Equal(product.CurrentStock))
	assert.True(t, decimal.NewFromInt(14).Equal(productRepo.products["prd-1"].CurrentStock))
	assert.Equal(t, entity.MovementIn, movement.Type)
	assert.Equal(t, "Shampoo Profissional 1L", movement.ProductName)
	assert.Len(t, movRepo.movements, 1)
}

func TestRecordMovement_SaidaSubtraiEstoque(t *testing.T) {
	uc, _, _ := newMovementUseCase(newShampoo("10"))

	_, product, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-1",
		Type:      entity.MovementOut,
		Quantity:  decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(product.CurrentStock))
}

func TestRecordMovement_SaidaAcimaDoEstoqueFalhaSemEscrever(t *testing.T) {
	uc, productRepo, movRepo := newMovementUseCase(newShampoo("2"))

	_, _, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-1",
		Type:      entity.MovementOut,
		Quantity:  decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada foi gravado: nem movimentação, nem estoque
	assert.Empty(t, movRepo.movements)
	assert.True(t, decimal.NewFromInt(2).Equal(productRepo.products["prd-1"].CurrentStock))
}

func TestRecordMovement_AjusteDefineValorAbsoluto(t *testing.T) {
	uc, _, _ := newMovementUseCase(newShampoo("10"))

	_, product, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-1",
		Type:      entity.MovementAdjustment,
		Quantity:  decimal.NewFromInt(3),
		Reason:    "Contagem de inventário",
	})
	require.NoError(t, err)

	// ADJUSTMENT não é delta: o estoque vira exatamente a quantidade informada
	assert.True(t, decimal.NewFromInt(3).Equal(product.CurrentStock))
}

func TestRecordMovement_ProdutoInexistente(t *testing.T) {
	uc, _, _ := newMovementUseCase()

	_, _, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-missing",
		Type:      entity.MovementIn,
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_EntradaInvalida(t *testing.T) {
	uc, _, _ := newMovementUseCase(newShampoo("10"))

	cases := []struct {
		name  string
		input stock.MovementInput
	}{
		{"sem produto", stock.MovementInput{Type: entity.MovementIn, Quantity: decimal.NewFromInt(1)}},
		{"tipo desconhecido", stock.MovementInput{ProductID: "prd-1", Type: "TRANSFER", Quantity: decimal.NewFromInt(1)}},
		{"quantidade zero", stock.MovementInput{ProductID: "prd-1", Type: entity.MovementIn, Quantity: decimal.Zero}},
		{"quantidade negativa", stock.MovementInput{ProductID: "prd-1", Type: entity.MovementIn, Quantity: decimal.NewFromInt(-2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.RecordMovement(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterSaleOutInTx_PermiteEstoqueNegativo(t *testing.T) {
	productRepo := newFakeProductRepo(newShampoo("1"))
	movRepo := &fakeMovementRepo{}
	uc := stock.NewMovementUseCase(nil, productRepo, movRepo)

	err := uc.RegisterSaleOutInTx(movRepo, productRepo, "prd-1", "sal-1", "usr-1", decimal.NewFromInt(3), time.Now())
	require.NoError(t, err)

	// A saída por venda não bloqueia: o estoque pode ficar negativo
	assert.True(t, decimal.NewFromInt(-2).Equal(productRepo.products["prd-1"].CurrentStock))
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementOut, movRepo.movements[0].Type)
	assert.Equal(t, "Venda #sal-1", movRepo.movements[0].Reason)
	assert.Equal(t, "usr-1", movRepo.movements[0].UserID)
}

func TestMovementKindApply(t *testing.T) {
	current := decimal.NewFromInt(10)
	qty := decimal.NewFromInt(4)

	assert.True(t, decimal.NewFromInt(14).Equal(entity.MovementIn.Apply(current, qty)))
	assert.True(t, decimal.NewFromInt(6).Equal(entity.MovementOut.Apply(current, qty)))
	assert.True(t, qty.Equal(entity.MovementAdjustment.Apply(current, qty)))
}

func TestListMovements_MaisRecentePrimeiroEFiltroPorProduto(t *testing.T) {
	conditioner := newShampoo("20")
	conditioner.ID = "prd-2"
	conditioner.Name = "Condicionador 500ml"
	conditioner.SKU = "CD-001"
	uc, _, _ := newMovementUseCase(newShampoo("10"), conditioner)

	for _, input := range []stock.MovementInput{
		{ProductID: "prd-1", Type: entity.MovementIn, Quantity: decimal.NewFromInt(4), Reason: "Reposição"},
		{ProductID: "prd-2", Type: entity.MovementIn, Quantity: decimal.NewFromInt(6), Reason: "Reposição"},
		{ProductID: "prd-1", Type: entity.MovementOut, Quantity: decimal.NewFromInt(1), Reason: "Uso interno"},
		{ProductID: "prd-1", Type: entity.MovementAdjustment, Quantity: decimal.NewFromInt(12), Reason: "Inventário"},
	} {
		_, _, err := uc.RecordMovement(context.Background(), input)
		require.NoError(t, err)
	}

	list, err := uc.ListMovements(context.Background(), "prd-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, entity.MovementAdjustment, list[0].Type)
	assert.Equal(t, entity.MovementOut, list[1].Type)
	assert.Equal(t, entity.MovementIn, list[2].Type)

	// productID vazio devolve o livro inteiro
	all, err := uc.ListMovements(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListMovements_LeituraNaoMudaNada(t *testing.T) {
	uc, productRepo, movRepo := newMovementUseCase(newShampoo("10"))

	_, _, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "prd-1",
		Type:      entity.MovementIn,
		Quantity:  decimal.NewFromInt(4),
		Reason:    "Reposição",
	})
	require.NoError(t, err)

	first, err := uc.ListMovements(context.Background(), "prd-1")
	require.NoError(t, err)
	second, err := uc.ListMovements(context.Background(), "prd-1")
	require.NoError(t, err)

	// Listar repetidamente devolve o mesmo livro e não toca no estoque
	assert.Equal(t, first, second)
	assert.Len(t, movRepo.movements, 1)
	assert.True(t, decimal.NewFromInt(14).Equal(productRepo.products["prd-1"].CurrentStock))
}
