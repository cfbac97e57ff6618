package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, client_id, client_name, professional_id, professional_name,
	service_id, service_name, date, time, duration, price, status, notes, created_at`

// AppointmentRepo implementação de AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository constrói o adaptador da agenda.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID, &a.ClientID, &a.ClientName, &a.ProfessionalID, &a.ProfessionalName,
		&a.ServiceID, &a.ServiceName, &a.Date, &a.Time, &a.Duration, &a.Price,
		&a.Status, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste um agendamento.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, client_id, client_name, professional_id, professional_name,
			service_id, service_name, date, time, duration, price, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.ClientID, appointment.ClientName, appointment.ProfessionalID,
		appointment.ProfessionalName, appointment.ServiceID, appointment.ServiceName,
		appointment.Date, appointment.Time, appointment.Duration, appointment.Price,
		appointment.Status, appointment.Notes, appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID busca um agendamento por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	a, err := scanAppointment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// Update atualiza um agendamento.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	query := `
		UPDATE appointments SET client_id = $2, client_name = $3, professional_id = $4,
			professional_name = $5, service_id = $6, service_name = $7, date = $8, time = $9,
			duration = $10, price = $11, status = $12, notes = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.ClientID, appointment.ClientName, appointment.ProfessionalID,
		appointment.ProfessionalName, appointment.ServiceID, appointment.ServiceName,
		appointment.Date, appointment.Time, appointment.Duration, appointment.Price,
		appointment.Status, appointment.Notes,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// List lista agendamentos, mais recentes primeiro, com filtros opcionais.
func (r *AppointmentRepo) List(filter repository.AppointmentFilter) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`
	var args []any
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	if filter.ProfessionalID != "" && filter.ProfessionalID != "all" {
		args = append(args, filter.ProfessionalID)
		query += fmt.Sprintf(" AND professional_id = $%d", len(args))
	}
	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += ` ORDER BY date DESC, time DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete remove um agendamento.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
