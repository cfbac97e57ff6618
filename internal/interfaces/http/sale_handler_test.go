package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/sales"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// Fakes mínimos para montar um CheckoutUseCase real atrás do handler.

type memSaleRepo struct {
	sales    map[string]*entity.Sale
	items    []*entity.SaleItem
	payments []*entity.SalePayment
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *memSaleRepo) Create(sale *entity.Sale) error { r.sales[sale.ID] = sale; return nil }

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *memSaleRepo) CreatePayment(payment *entity.SalePayment) error {
	r.payments = append(r.payments, payment)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	loaded := *sale
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

func (r *memSaleRepo) List(startDate, endDate *time.Time) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSaleRepo) StatsByClient(clientID string) (*repository.ClientSalesStats, error) {
	return &repository.ClientSalesStats{Spent: decimal.Zero}, nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { return nil }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(id string, stockValue decimal.Decimal) error {
	r.products[id].CurrentStock = stockValue
	return nil
}

func (r *memProductRepo) Update(p *entity.Product) error { return nil }
func (r *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { return nil }

type memTransactionRepo struct {
	created []*entity.Transaction
}

func (r *memTransactionRepo) Create(txn *entity.Transaction) error {
	r.created = append(r.created, txn)
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) { return nil, nil }

func (r *memTransactionRepo) Update(txn *entity.Transaction) error { return nil }
func (r *memTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *memTransactionRepo) Delete(id string) error { return nil }

type memClientRepo struct{}

func (r *memClientRepo) Create(c *entity.Client) error { return nil }

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) { return nil, nil }

func (r *memClientRepo) GetByEmail(e string) (*entity.Client, error) { return nil, nil }

func (r *memClientRepo) Update(c *entity.Client) error { return nil }

func (r *memClientRepo) UpdateStats(id string, visits int, spent decimal.Decimal, lastVisit *time.Time) error {
	return nil
}
func (r *memClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, error) {
	return nil, nil
}
func (r *memClientRepo) Deactivate(id string) error { return nil }

type memCheckoutRunner struct {
	saleRepo    repository.SaleRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	txnRepo     repository.TransactionRepository
	clientRepo  repository.ClientRepository
}

func (r *memCheckoutRunner) RunCheckout(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) error) error {
	return fn(r.saleRepo, r.movRepo, r.productRepo, r.txnRepo, r.clientRepo)
}

func newSalesApp(products ...*entity.Product) (*fiber.App, *memProductRepo) {
	productRepo := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	saleRepo := newMemSaleRepo()
	movRepo := &memMovementRepo{}
	runner := &memCheckoutRunner{
		saleRepo:    saleRepo,
		movRepo:     movRepo,
		productRepo: productRepo,
		txnRepo:     &memTransactionRepo{},
		clientRepo:  &memClientRepo{},
	}
	ledger := stock.NewMovementUseCase(nil, productRepo, movRepo)
	uc := sales.NewCheckoutUseCase(runner, ledger, saleRepo)

	app := fiber.New()
	handler := NewSaleHandler(uc)
	app.Post("/api/sales", handler.Create)
	app.Get("/api/sales", handler.List)
	return app, productRepo
}

func postSale(t *testing.T, app *fiber.App, body any) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/sales", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func saleBody() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Subtotal: decimal.NewFromInt(130),
		Discount: decimal.NewFromInt(10),
		Total:    decimal.NewFromInt(120),
		Items: []dto.SaleItemRequest{
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
		Payments: []dto.SalePaymentRequest{
			{Method: "PIX", Amount: decimal.NewFromInt(120)},
		},
	}
}

func TestCreateSale_Retorna201ComVendaCompleta(t *testing.T) {
	app, productRepo := newSalesApp(&entity.Product{
		ID:           "prd-1",
		Name:         "Shampoo Profissional 1L",
		CurrentStock: decimal.NewFromInt(10),
	})

	status, body := postSale(t, app, saleBody())
	assert.Equal(t, fiber.StatusCreated, status)

	var out dto.SaleResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
	assert.True(t, decimal.NewFromInt(120).Equal(out.Total))
	assert.Len(t, out.Items, 2)
	assert.Len(t, out.Payments, 1)
	assert.Equal(t, "PIX", out.Payments[0].Method)

	// A baixa de estoque do item PRODUCT aconteceu dentro do fechamento
	assert.True(t, decimal.NewFromInt(8).Equal(productRepo.products["prd-1"].CurrentStock))
}

func TestCreateSale_Retorna400ComMensagem(t *testing.T) {
	app, _ := newSalesApp()

	t.Run("sem itens", func(t *testing.T) {
		in := saleBody()
		in.Items = nil
		status, body := postSale(t, app, in)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var out dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "A venda deve ter pelo menos um item", out.Error)
	})

	t.Run("sem pagamentos", func(t *testing.T) {
		in := saleBody()
		in.Payments = nil
		status, body := postSale(t, app, in)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var out dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "A venda deve ter pelo menos uma forma de pagamento", out.Error)
	})

	t.Run("item sem nome vira Dados inválidos", func(t *testing.T) {
		in := saleBody()
		in.Items[0].Name = ""
		status, body := postSale(t, app, in)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var out dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "Dados inválidos", out.Error)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/sales", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var out dto.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, "Corpo da requisição inválido", out.Error)
	})
}

func TestListSales_DataInvalidaRetorna400(t *testing.T) {
	app, _ := newSalesApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales?startDate=31-08-2026", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "startDate inválido", out.Error)
}
