package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository sobre PostgreSQL.
// O livro é append-only: não há UPDATE nem DELETE aqui.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador do livro de movimentações.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insere uma movimentação no livro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, string(movement.Type), movement.Quantity,
		movement.Reason, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID busca uma movimentação com o nome do produto desnormalizado.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.user_id, m.created_at,
			COALESCE(p.name, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.UserID, &m.CreatedAt,
		&m.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// ListByProduct lista movimentações da mais recente para a mais antiga.
// productID vazio lista o livro inteiro.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.user_id, m.created_at,
			COALESCE(p.name, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id`
	var args []any
	if productID != "" {
		query += ` WHERE m.product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY m.created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.UserID,
			&m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
