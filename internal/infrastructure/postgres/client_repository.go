package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, email, phone, birthdate, address, city, state, zip_code, notes,
	total_visits, total_spent, last_visit, segment, tags, source, lifetime_value, average_ticket,
	last_contact_date, next_follow_up, assigned_to, active, created_at`

// ClientRepo implementação de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador de persistência de clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Birthdate, &c.Address, &c.City, &c.State,
		&c.ZipCode, &c.Notes, &c.TotalVisits, &c.TotalSpent, &c.LastVisit, &c.Segment,
		&c.Tags, &c.Source, &c.LifetimeValue, &c.AverageTicket, &c.LastContactDate,
		&c.NextFollowUp, &c.AssignedTo, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste um cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, birthdate, address, city, state, zip_code, notes,
			total_visits, total_spent, last_visit, segment, tags, source, lifetime_value, average_ticket,
			last_contact_date, next_follow_up, assigned_to, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Birthdate, client.Address,
		client.City, client.State, client.ZipCode, client.Notes, client.TotalVisits,
		client.TotalSpent, client.LastVisit, client.Segment, client.Tags, client.Source,
		client.LifetimeValue, client.AverageTicket, client.LastContactDate, client.NextFollowUp,
		client.AssignedTo, client.Active, client.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID busca um cliente por ID (ativo ou não).
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByEmail busca um cliente ativo pelo email.
func (r *ClientRepo) GetByEmail(email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1 AND active`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return c, nil
}

// Update atualiza os dados cadastrais e de CRM; os agregados de venda ficam fora do SET.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, birthdate = $5, address = $6,
			city = $7, state = $8, zip_code = $9, notes = $10, segment = $11, tags = $12,
			source = $13, lifetime_value = $14, average_ticket = $15, last_contact_date = $16,
			next_follow_up = $17, assigned_to = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Birthdate, client.Address,
		client.City, client.State, client.ZipCode, client.Notes, client.Segment, client.Tags,
		client.Source, client.LifetimeValue, client.AverageTicket, client.LastContactDate,
		client.NextFollowUp, client.AssignedTo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// UpdateStats grava os agregados denormalizados de venda.
func (r *ClientRepo) UpdateStats(id string, visits int, spent decimal.Decimal, lastVisit *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET total_visits = $2, total_spent = $3, last_visit = $4 WHERE id = $1`,
		id, visits, spent, lastVisit,
	)
	if err != nil {
		return fmt.Errorf("update client stats: %w", err)
	}
	return nil
}

// List lista clientes ativos, com busca em nome/email/telefone e filtro de segmento.
func (r *ClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE active`
	var args []any
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n)
	}
	if filter.Segment != "" && filter.Segment != "ALL" {
		args = append(args, filter.Segment)
		query += fmt.Sprintf(" AND segment = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Deactivate soft delete: o histórico de vendas e agendamentos fica intacto.
func (r *ClientRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE clients SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	return nil
}
