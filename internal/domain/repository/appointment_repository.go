package repository

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// AppointmentFilter filtros da agenda.
type AppointmentFilter struct {
	Date           *time.Time
	ProfessionalID string // vazio ou "all" = todos
	Status         string
}

// AppointmentRepository porta de persistência de agendamentos.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	// List ordena por data DESC, hora DESC.
	List(filter AppointmentFilter) ([]*entity.Appointment, error)
	Delete(id string) error
}
