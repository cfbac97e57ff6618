package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// ServiceRepository porta de persistência do catálogo de serviços.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	List(onlyActive bool) ([]*entity.Service, error)
	Deactivate(id string) error
}
