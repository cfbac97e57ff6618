package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// CheckoutUseCase transforma o carrinho do PDV (itens + pagamentos) numa venda
// persistida, com baixa de estoque, lançamento financeiro e atualização das
// estatísticas do cliente. A ordem dos passos é contrato semântico:
//
//	venda → itens (com baixa de estoque por item PRODUCT) → pagamentos →
//	transação INCOME/PAID → estatísticas do cliente → releitura.
type CheckoutUseCase struct {
	txRunner   TxRunner
	ledger     StockLedger
	saleReader repository.SaleRepository // atado ao pool, para leituras após o commit
}

// NewCheckoutUseCase constrói o caso de uso.
func NewCheckoutUseCase(txRunner TxRunner, ledger StockLedger, saleReader repository.SaleRepository) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:   txRunner,
		ledger:     ledger,
		saleReader: saleReader,
	}
}

// CheckoutItem linha do carrinho como chega do PDV. Name e Price viram
// snapshot no item da venda.
type CheckoutItem struct {
	Type     string // SERVICE | PRODUCT
	ItemID   string
	Name     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CheckoutPayment forma de pagamento do carrinho.
type CheckoutPayment struct {
	Method string
	Amount decimal.Decimal
}

// CheckoutInput entrada do fechamento de venda.
// Subtotal/Discount/Total chegam calculados pelo caller e são aceitos como
// estão; o motor não os reconfere contra a soma dos itens.
type CheckoutInput struct {
	ClientID       string
	ProfessionalID string
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	Notes          string
	UserID         string
	Items          []CheckoutItem
	Payments       []CheckoutPayment
}

// Checkout valida o carrinho, executa a sequência de escrita e devolve a venda
// persistida com itens e pagamentos.
//
// Item PRODUCT cujo produto não existe mais no catálogo tem a baixa de estoque
// pulada em silêncio (com warn no log); a venda segue. O item em si é gravado
// de qualquer forma, com o snapshot que veio do carrinho.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, input CheckoutInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrSaleWithoutItems
	}
	if len(input.Payments) == 0 {
		return nil, domain.ErrSaleWithoutPayments
	}
	for _, item := range input.Items {
		if item.Type == "" || item.ItemID == "" || item.Name == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, payment := range input.Payments {
		if payment.Method == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	saleID := entity.NewID("sal")

	err := uc.txRunner.RunCheckout(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
	) error {
		// 1) Cabeçalho da venda, já COMPLETED
		sale := &entity.Sale{
			ID:             saleID,
			ClientID:       input.ClientID,
			ProfessionalID: input.ProfessionalID,
			Subtotal:       input.Subtotal,
			Discount:       input.Discount,
			Total:          input.Total,
			Status:         entity.SaleStatusCompleted,
			Notes:          input.Notes,
			CreatedAt:      now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 2) Itens com snapshot de nome/preço + baixa de estoque por item PRODUCT
		for _, item := range input.Items {
			saleItem := &entity.SaleItem{
				ID:       entity.NewID("itm"),
				SaleID:   saleID,
				Type:     item.Type,
				ItemID:   item.ItemID,
				ItemName: item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Discount: item.Discount,
				Total:    item.Total,
			}
			if err := saleRepo.CreateItem(saleItem); err != nil {
				return err
			}

			if item.Type != entity.SaleItemProduct {
				continue
			}
			err := uc.ledger.RegisterSaleOutInTx(movRepo, productRepo, item.ItemID, saleID, input.UserID, item.Quantity, now)
			if errors.Is(err, domain.ErrNotFound) {
				// Produto removido do catálogo entre o carrinho e o fechamento:
				// a venda segue sem a baixa de estoque desse item.
				log.Warn().Str("sale_id", saleID).Str("item_id", item.ItemID).
					Msg("produto do item não encontrado; baixa de estoque pulada")
				continue
			}
			if err != nil {
				return err
			}
		}

		// 3) Pagamentos
		for _, payment := range input.Payments {
			salePayment := &entity.SalePayment{
				ID:     entity.NewID("pay"),
				SaleID: saleID,
				Method: payment.Method,
				Amount: payment.Amount,
			}
			if err := saleRepo.CreatePayment(salePayment); err != nil {
				return err
			}
		}

		// 4) Lançamento financeiro: um INCOME/PAID por venda, categoria SALE,
		// com a forma de pagamento do primeiro pagamento
		paidDate := today
		txn := &entity.Transaction{
			ID:             entity.NewID("txn"),
			Type:           entity.TransactionIncome,
			Category:       entity.CategorySale,
			Description:    fmt.Sprintf("Venda #%s", saleID),
			Amount:         input.Total,
			Status:         entity.TransactionPaid,
			PaymentMethod:  input.Payments[0].Method,
			DueDate:        today,
			PaidDate:       &paidDate,
			ClientID:       input.ClientID,
			ProfessionalID: input.ProfessionalID,
			CreatedAt:      now,
		}
		if err := txnRepo.Create(txn); err != nil {
			return err
		}

		// 5) Estatísticas do cliente (quando a venda tem cliente)
		if input.ClientID != "" {
			client, err := clientRepo.GetByID(input.ClientID)
			if err != nil {
				return err
			}
			if client != nil {
				visits := client.TotalVisits + 1
				spent := client.TotalSpent.Add(input.Total)
				if err := clientRepo.UpdateStats(client.ID, visits, spent, &today); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6) Releitura da venda persistida com itens e pagamentos
	return uc.saleReader.GetByID(saleID)
}

// ListSales devolve vendas filtradas por data de criação, mais recentes primeiro.
func (uc *CheckoutUseCase) ListSales(ctx context.Context, startDate, endDate *time.Time) ([]*entity.Sale, error) {
	return uc.saleReader.List(startDate, endDate)
}
