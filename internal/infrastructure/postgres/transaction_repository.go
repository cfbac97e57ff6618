package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, type, category, description, amount, status, payment_method,
	due_date, paid_date, client_id, professional_id, notes, created_at`

// TransactionRepo implementação de TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository constrói o adaptador do livro financeiro.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount, &t.Status, &t.PaymentMethod,
		&t.DueDate, &t.PaidDate, &t.ClientID, &t.ProfessionalID, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste um lançamento.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, category, description, amount, status, payment_method,
			due_date, paid_date, client_id, professional_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Type, txn.Category, txn.Description, txn.Amount, txn.Status, txn.PaymentMethod,
		txn.DueDate, txn.PaidDate, txn.ClientID, txn.ProfessionalID, txn.Notes, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID busca um lançamento por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Update atualiza um lançamento existente.
func (r *TransactionRepo) Update(txn *entity.Transaction) error {
	query := `
		UPDATE transactions SET type = $2, category = $3, description = $4, amount = $5, status = $6,
			payment_method = $7, due_date = $8, paid_date = $9, client_id = $10, professional_id = $11,
			notes = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Type, txn.Category, txn.Description, txn.Amount, txn.Status,
		txn.PaymentMethod, txn.DueDate, txn.PaidDate, txn.ClientID, txn.ProfessionalID, txn.Notes,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// List lista lançamentos com filtros, vencimento mais recente primeiro.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	if filter.Type != "" && filter.Type != "ALL" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" && filter.Status != "ALL" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}
	query += " ORDER BY due_date DESC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete remove um lançamento.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
