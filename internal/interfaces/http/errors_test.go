package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
)

func TestFail_MapeiaErrosDeDominio(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "Dados inválidos"},
		{"venda sem itens", domain.ErrSaleWithoutItems, fiber.StatusBadRequest, "A venda deve ter pelo menos um item"},
		{"venda sem pagamentos", domain.ErrSaleWithoutPayments, fiber.StatusBadRequest, "A venda deve ter pelo menos uma forma de pagamento"},
		{"estoque insuficiente", domain.ErrInsufficientStock, fiber.StatusBadRequest, "Estoque insuficiente"},
		{"sku duplicado", domain.ErrSKUAlreadyExists, fiber.StatusBadRequest, "SKU já cadastrado"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "Email já cadastrado"},
		{"não encontrado", domain.ErrNotFound, fiber.StatusNotFound, "Recurso não encontrado"},
		{"conflito", domain.ErrConflict, fiber.StatusConflict, "Recurso já existe"},
		{"não autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "Credenciais inválidas"},
		{"erro desconhecido", errors.New("pg down"), fiber.StatusInternalServerError, "Erro interno do servidor"},
		{"erro embrulhado", fmt.Errorf("buscar produto: %w", domain.ErrNotFound), fiber.StatusNotFound, "Recurso não encontrado"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return fail(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tc.wantError, out.Error)
		})
	}
}
