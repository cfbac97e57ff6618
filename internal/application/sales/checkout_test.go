package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/sales"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// fakeProductRepo produtos em memória.
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

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stockValue decimal.Decimal) error {
	r.products[id].CurrentStock = stockValue
	return nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error { return nil }

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error { return nil }

// fakeMovementRepo livro de movimentações em memória.
type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.movements = append(r.movements, movement)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

// fakeSaleRepo vendas em memória com itens e pagamentos.
type fakeSaleRepo struct {
	sales    map[string]*entity.Sale
	items    []*entity.SaleItem
	payments []*entity.SalePayment
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeSaleRepo) CreatePayment(payment *entity.SalePayment) error {
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	loaded := *sale
	loaded.Items = nil
	loaded.Payments = nil
	for _, item := range r.items {
		if item.SaleID == id {
			loaded.Items = append(loaded.Items, *item)
		}
	}
	for _, payment := range r.payments {
		if payment.SaleID == id {
			loaded.Payments = append(loaded.Payments, *payment)
		}
	}
	return &loaded, nil
}

func (r *fakeSaleRepo) List(startDate, endDate *time.Time) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) StatsByClient(clientID string) (*repository.ClientSalesStats, error) {
	stats := &repository.ClientSalesStats{Spent: decimal.Zero}
	for _, s := range r.sales {
		if s.ClientID != clientID || s.Status != entity.SaleStatusCompleted {
			continue
		}
		stats.Visits++
		stats.Spent = stats.Spent.Add(s.Total)
		day := time.Date(s.CreatedAt.Year(), s.CreatedAt.Month(), s.CreatedAt.Day(), 0, 0, 0, 0, s.CreatedAt.Location())
		if stats.LastVisit == nil || day.After(*stats.LastVisit) {
			stats.LastVisit = &day
		}
	}
	return stats, nil
}

// fakeTransactionRepo só acumula os lançamentos criados.
type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(txn *entity.Transaction) error {
	r.created = append(r.created, txn)
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) { return nil, nil }

func (r *fakeTransactionRepo) Update(txn *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	return r.created, nil
}
func (r *fakeTransactionRepo) Delete(id string) error { return nil }

// fakeClientRepo clientes em memória com os contadores de venda.
type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *fakeClientRepo) Create(client *entity.Client) error { r.clients[client.ID] = client; return nil }

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) { return nil, nil }

func (r *fakeClientRepo) Update(client *entity.Client) error { return nil }

func (r *fakeClientRepo) UpdateStats(id string, visits int, spent decimal.Decimal, lastVisit *time.Time) error {
	c := r.clients[id]
	c.TotalVisits = visits
	c.TotalSpent = spent
	c.LastVisit = lastVisit
	return nil
}

func (r *fakeClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Deactivate(id string) error { return nil }

// fakeCheckoutRunner passa os fakes ao callback sem transação.
type fakeCheckoutRunner struct {
	saleRepo    repository.SaleRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	txnRepo     repository.TransactionRepository
	clientRepo  repository.ClientRepository
}

func (r *fakeCheckoutRunner) RunCheckout(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) error) error {
	return fn(r.saleRepo, r.movRepo, r.productRepo, r.txnRepo, r.clientRepo)
}

type checkoutFixture struct {
	uc          *sales.CheckoutUseCase
	saleRepo    *fakeSaleRepo
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
	txnRepo     *fakeTransactionRepo
	clientRepo  *fakeClientRepo
}

func newCheckoutFixture(products []*entity.Product, clients []*entity.Client) *checkoutFixture {
	f := &checkoutFixture{
		saleRepo:    newFakeSaleRepo(),
		movRepo:     &fakeMovementRepo{},
		productRepo: newFakeProductRepo(products...),
		txnRepo:     &fakeTransactionRepo{},
		clientRepo:  newFakeClientRepo(clients...),
	}
	runner := &fakeCheckoutRunner{
		saleRepo:    f.saleRepo,
		movRepo:     f.movRepo,
		productRepo: f.productRepo,
		txnRepo:     f.txnRepo,
		clientRepo:  f.clientRepo,
	}
	ledger := stock.NewMovementUseCase(nil, f.productRepo, f.movRepo)
	f.uc = sales.NewCheckoutUseCase(runner, ledger, f.saleRepo)
	return f
}

func validInput() sales.CheckoutInput {
	return sales.CheckoutInput{
		Subtotal: decimal.NewFromInt(130),
		Discount: decimal.NewFromInt(10),
		Total:    decimal.NewFromInt(120),
		UserID:   "usr-1",
		Items: []sales.CheckoutItem{
			{
				Type:     "SERVICE",
				ItemID:   "svc-1",
				Name:     "Corte Feminino",
				Quantity: decimal.NewFromInt(1),
				Price:    decimal.NewFromInt(80),
				Total:    decimal.NewFromInt(80),
			},
			{
				Type:     "PRODUCT",
				ItemID:   "prd-1",
				Name:     "Shampoo Profissional 1L",
				Quantity: decimal.NewFromInt(2),
				Price:    decimal.NewFromInt(25),
				Total:    decimal.NewFromInt(50),
			},
		},
		Payments: []sales.CheckoutPayment{
			{Method: "PIX", Amount: decimal.NewFromInt(120)},
		},
	}
}

func TestCheckout_FluxoCompleto(t *testing.T) {
	f := newCheckoutFixture([]*entity.Product{newShampooForSale("10")}, nil)

	sale, err := f.uc.Checkout(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.True(t, decimal.NewFromInt(120).Equal(sale.Total))
	assert.Len(t, sale.Items, 2)
	assert.Len(t, sale.Payments, 1)

	// Só o item PRODUCT gera baixa de estoque
	require.Len(t, f.movRepo.movements, 1)
	movement := f.movRepo.movements[0]
	assert.Equal(t, entity.MovementOut, movement.Type)
	assert.Equal(t, "prd-1", movement.ProductID)
	assert.Equal(t, "Venda #"+sale.ID, movement.Reason)
	assert.True(t, decimal.NewFromInt(8).Equal(f.productRepo.products["prd-1"].CurrentStock))

	// Um lançamento INCOME/PAID com a forma do primeiro pagamento
	require.Len(t, f.txnRepo.created, 1)
	txn := f.txnRepo.created[0]
	assert.Equal(t, entity.TransactionIncome, txn.Type)
	assert.Equal(t, entity.CategorySale, txn.Category)
	assert.Equal(t, entity.TransactionPaid, txn.Status)
	assert.Equal(t, "PIX", txn.PaymentMethod)
	assert.True(t, decimal.NewFromInt(120).Equal(txn.Amount))
	require.NotNil(t, txn.PaidDate)
}

func TestCheckout_TotalDoCallerEhAceito(t *testing.T) {
	f := newCheckoutFixture(nil, nil)

	input := validInput()
	input.Items = input.Items[:1] // só o serviço de 80
	input.Total = decimal.NewFromInt(999)

	sale, err := f.uc.Checkout(context.Background(), input)
	require.NoError(t, err)

	// O motor não reconfere o total contra a soma dos itens
	assert.True(t, decimal.NewFromInt(999).Equal(sale.Total))
	assert.True(t, decimal.NewFromInt(999).Equal(f.txnRepo.created[0].Amount))
}

func TestCheckout_ProdutoRemovidoDoCatalogoNaoDerrubaVenda(t *testing.T) {
	// Nenhum produto cadastrado: a baixa de estoque do item PRODUCT é pulada
	f := newCheckoutFixture(nil, nil)

	sale, err := f.uc.Checkout(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, sale)

	// O item foi gravado com o snapshot do carrinho, sem movimentação
	assert.Len(t, sale.Items, 2)
	assert.Empty(t, f.movRepo.movements)
}

func TestCheckout_AtualizaEstatisticasDoCliente(t *testing.T) {
	client := &entity.Client{
		ID:          "cli-1",
		Name:        "Maria Souza",
		TotalVisits: 3,
		TotalSpent:  decimal.NewFromInt(400),
		Active:      true,
	}
	f := newCheckoutFixture([]*entity.Product{newShampooForSale("10")}, []*entity.Client{client})

	input := validInput()
	input.ClientID = "cli-1"

	_, err := f.uc.Checkout(context.Background(), input)
	require.NoError(t, err)

	updated := f.clientRepo.clients["cli-1"]
	assert.Equal(t, 4, updated.TotalVisits)
	assert.True(t, decimal.NewFromInt(520).Equal(updated.TotalSpent))
	require.NotNil(t, updated.LastVisit)
}

func TestCheckout_ClienteInexistenteNaoFalha(t *testing.T) {
	f := newCheckoutFixture(nil, nil)

	input := validInput()
	input.ClientID = "cli-ghost"

	sale, err := f.uc.Checkout(context.Background(), input)
	require.NoError(t, err)
	assert.NotNil(t, sale)
}

func TestCheckout_ValidacaoDoCarrinho(t *testing.T) {
	f := newCheckoutFixture(nil, nil)

	t.Run("sem itens", func(t *testing.T) {
		input := validInput()
		input.Items = nil
		_, err := f.uc.Checkout(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrSaleWithoutItems)
	})

	t.Run("sem pagamentos", func(t *testing.T) {
		input := validInput()
		input.Payments = nil
		_, err := f.uc.Checkout(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrSaleWithoutPayments)
	})

	t.Run("item sem nome", func(t *testing.T) {
		input := validInput()
		input.Items[0].Name = ""
		_, err := f.uc.Checkout(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("quantidade zero", func(t *testing.T) {
		input := validInput()
		input.Items[0].Quantity = decimal.Zero
		_, err := f.uc.Checkout(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("pagamento sem forma", func(t *testing.T) {
		input := validInput()
		input.Payments[0].Method = ""
		_, err := f.uc.Checkout(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	// Nada foi persistido em nenhum dos casos
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.txnRepo.created)
}

func newShampooForSale(current string) *entity.Product {
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
