package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

func newProductsApp() *fiber.App {
	uc := usecase.NewProductUseCase(&memProductRepo{products: make(map[string]*entity.Product)})
	app := fiber.New()
	app.Post("/api/products", NewProductHandler(uc).Create)
	return app
}

func postProduct(t *testing.T, app *fiber.App, body dto.CreateProductRequest) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func productBody() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      "Shampoo Profissional 1L",
		Type:      entity.ProductTypeResale,
		Category:  "Cabelo",
		SKU:       "SH-001",
		CostPrice: decimal.NewFromInt(30),
	}
}

func TestCreateProduct_Retorna201(t *testing.T) {
	app := newProductsApp()

	status, body := postProduct(t, app, productBody())
	assert.Equal(t, fiber.StatusCreated, status)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SH-001", out.SKU)
	assert.True(t, decimal.NewFromInt(30).Equal(out.CostPrice))
}

func TestCreateProduct_PrecoDeCustoObrigatorio(t *testing.T) {
	app := newProductsApp()

	// costPrice ausente (zero) não passa da validação do handler
	in := productBody()
	in.CostPrice = decimal.Zero
	status, body := postProduct(t, app, in)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Nome, tipo, categoria, SKU e preço de custo são obrigatórios", out.Error)
}

func TestCreateProduct_CamposObrigatorios(t *testing.T) {
	app := newProductsApp()

	in := productBody()
	in.SKU = ""
	status, body := postProduct(t, app, in)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Nome, tipo, categoria, SKU e preço de custo são obrigatórios", out.Error)
}
