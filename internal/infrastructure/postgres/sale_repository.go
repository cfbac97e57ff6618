package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de persistência de vendas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste o cabeçalho da venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, professional_id, subtotal, discount, total, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.ProfessionalID, sale.Subtotal, sale.Discount,
		sale.Total, sale.Status, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste um item da venda com os snapshots de nome e preço.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, type, item_id, item_name, quantity, price, discount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.Type, item.ItemID, item.ItemName,
		item.Quantity, item.Price, item.Discount, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// CreatePayment persiste um pagamento da venda.
func (r *SaleRepo) CreatePayment(payment *entity.SalePayment) error {
	query := `INSERT INTO sale_payments (id, sale_id, method, amount) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.Method, payment.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert sale payment: %w", err)
	}
	return nil
}

// GetByID devolve a venda com itens e pagamentos carregados.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, client_id, professional_id, subtotal, discount, total, status, notes, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClientID, &s.ProfessionalID, &s.Subtotal, &s.Discount,
		&s.Total, &s.Status, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	if err := r.loadItems(&s); err != nil {
		return nil, err
	}
	if err := r.loadPayments(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) loadItems(s *entity.Sale) error {
	query := `
		SELECT id, sale_id, type, item_id, item_name, quantity, price, discount, total
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, s.ID)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.Type, &item.ItemID, &item.ItemName,
			&item.Quantity, &item.Price, &item.Discount, &item.Total); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return rows.Err()
}

func (r *SaleRepo) loadPayments(s *entity.Sale) error {
	query := `SELECT id, sale_id, method, amount FROM sale_payments WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, s.ID)
	if err != nil {
		return fmt.Errorf("list sale payments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var payment entity.SalePayment
		if err := rows.Scan(&payment.ID, &payment.SaleID, &payment.Method, &payment.Amount); err != nil {
			return fmt.Errorf("scan sale payment: %w", err)
		}
		s.Payments = append(s.Payments, payment)
	}
	return rows.Err()
}

// List devolve vendas (sem filhos) filtradas por data de criação, mais recentes primeiro.
func (r *SaleRepo) List(startDate, endDate *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, client_id, professional_id, subtotal, discount, total, status, notes, created_at
		FROM sales WHERE 1=1`
	var args []any
	if startDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND created_at::date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND created_at::date <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ProfessionalID, &s.Subtotal, &s.Discount,
			&s.Total, &s.Status, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// StatsByClient recalcula visitas, total gasto e última visita a partir das
// vendas COMPLETED do cliente. Fonte de verdade da reconciliação.
func (r *SaleRepo) StatsByClient(clientID string) (*repository.ClientSalesStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), MAX(created_at::date)
		FROM sales WHERE client_id = $1 AND status = $2`
	var stats repository.ClientSalesStats
	err := r.q.QueryRow(context.Background(), query, clientID, entity.SaleStatusCompleted).Scan(
		&stats.Visits, &stats.Spent, &stats.LastVisit,
	)
	if err != nil {
		return nil, fmt.Errorf("client sales stats: %w", err)
	}
	return &stats, nil
}
