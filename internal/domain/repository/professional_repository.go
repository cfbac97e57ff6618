package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// ProfessionalRepository porta de persistência de profissionais.
type ProfessionalRepository interface {
	Create(professional *entity.Professional) error
	GetByID(id string) (*entity.Professional, error)
	Update(professional *entity.Professional) error
	// List devolve só ativos quando onlyActive = true.
	List(onlyActive bool) ([]*entity.Professional, error)
	Deactivate(id string) error
}
