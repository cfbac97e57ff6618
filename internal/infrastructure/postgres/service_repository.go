package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, name, description, price, duration, category, active, created_at`

// ServiceRepo implementação de ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository constrói o adaptador do catálogo de serviços.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.Category, &s.Active, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste um serviço.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, price, duration, category, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Price, service.Duration,
		service.Category, service.Active, service.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID busca um serviço por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// Update atualiza um serviço.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services SET name = $2, description = $3, price = $4, duration = $5, category = $6, active = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Price, service.Duration,
		service.Category, service.Active,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// List lista serviços em ordem alfabética; onlyActive esconde os desativados.
func (r *ServiceRepo) List(onlyActive bool) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Deactivate soft delete.
func (r *ServiceRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE services SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	return nil
}
