package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.ProfessionalRepository = (*ProfessionalRepo)(nil)

const professionalColumns = `id, name, email, phone, specialties, commission_rate, work_schedule, active, created_at`

// ProfessionalRepo implementação de ProfessionalRepository sobre PostgreSQL.
type ProfessionalRepo struct {
	q Querier
}

// NewProfessionalRepository constrói o adaptador de persistência de profissionais.
func NewProfessionalRepository(q Querier) *ProfessionalRepo {
	return &ProfessionalRepo{q: q}
}

func scanProfessional(row pgx.Row) (*entity.Professional, error) {
	var p entity.Professional
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Specialties, &p.CommissionRate,
		&p.WorkSchedule, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um profissional.
func (r *ProfessionalRepo) Create(professional *entity.Professional) error {
	query := `
		INSERT INTO professionals (id, name, email, phone, specialties, commission_rate, work_schedule, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		professional.ID, professional.Name, professional.Email, professional.Phone,
		professional.Specialties, professional.CommissionRate, professional.WorkSchedule,
		professional.Active, professional.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert professional: %w", err)
	}
	return nil
}

// GetByID busca um profissional por ID.
func (r *ProfessionalRepo) GetByID(id string) (*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE id = $1`
	p, err := scanProfessional(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return p, nil
}

// Update atualiza um profissional.
func (r *ProfessionalRepo) Update(professional *entity.Professional) error {
	query := `
		UPDATE professionals SET name = $2, email = $3, phone = $4, specialties = $5,
			commission_rate = $6, work_schedule = $7, active = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		professional.ID, professional.Name, professional.Email, professional.Phone,
		professional.Specialties, professional.CommissionRate, professional.WorkSchedule,
		professional.Active,
	)
	if err != nil {
		return fmt.Errorf("update professional: %w", err)
	}
	return nil
}

// List lista profissionais em ordem alfabética; onlyActive esconde os desativados.
func (r *ProfessionalRepo) List(onlyActive bool) ([]*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Deactivate soft delete: agendamentos e comissões históricas ficam.
func (r *ProfessionalRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE professionals SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate professional: %w", err)
	}
	return nil
}
