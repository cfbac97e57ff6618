package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, type, category, brand, sku, current_stock, min_stock, max_stock,
	unit, cost_price, sale_price, supplier, location, notes, created_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Type, &p.Category, &p.Brand, &p.SKU,
		&p.CurrentStock, &p.MinStock, &p.MaxStock, &p.Unit,
		&p.CostPrice, &p.SalePrice, &p.Supplier, &p.Location, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um produto com o saldo inicial de estoque.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, type, category, brand, sku, current_stock, min_stock, max_stock,
			unit, cost_price, sale_price, supplier, location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Type, product.Category, product.Brand, product.SKU,
		product.CurrentStock, product.MinStock, product.MaxStock, product.Unit,
		product.CostPrice, product.SalePrice, product.Supplier, product.Location, product.Notes,
		product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU busca um produto pelo SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// GetForUpdate carrega o produto bloqueando a linha (SELECT FOR UPDATE) para
// serializar o ciclo leitura-modificação-escrita do estoque dentro de uma tx.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateStock grava o estoque derivado. Só o livro de movimentações e o motor
// de vendas chamam isto, dentro das suas transações.
func (r *ProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2 WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Update atualiza os dados cadastrais; current_stock fica fora do SET.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, type = $3, category = $4, brand = $5, sku = $6,
			min_stock = $7, max_stock = $8, unit = $9, cost_price = $10, sale_price = $11,
			supplier = $12, location = $13, notes = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Type, product.Category, product.Brand, product.SKU,
		product.MinStock, product.MaxStock, product.Unit, product.CostPrice, product.SalePrice,
		product.Supplier, product.Location, product.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista produtos em ordem alfabética, com filtros opcionais.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	if filter.Category != "" && filter.Category != "ALL" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Type != "" && filter.Type != "ALL" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.LowStock {
		query += " AND current_stock <= min_stock"
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete remove um produto. As movimentações dele seguem no livro.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
