package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ServiceUseCase CRUD do catálogo de serviços.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create cria um serviço ativo.
func (uc *ServiceUseCase) Create(in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.Duration <= 0 {
		return nil, domain.ErrInvalidInput
	}
	service := &entity.Service{
		ID:          entity.NewID("svc"),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Category:    in.Category,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	resp := dto.ToServiceResponse(service)
	return &resp, nil
}

// GetByID busca um serviço por ID.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	resp := dto.ToServiceResponse(service)
	return &resp, nil
}

// Update atualiza um serviço. Vendas históricas mantêm o preço da época.
func (uc *ServiceUseCase) Update(id string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	service.Name = in.Name
	service.Description = in.Description
	service.Price = in.Price
	service.Duration = in.Duration
	service.Category = in.Category
	if in.Active != nil {
		service.Active = *in.Active
	}
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	resp := dto.ToServiceResponse(service)
	return &resp, nil
}

// List lista serviços; onlyActive esconde os desativados.
func (uc *ServiceUseCase) List(onlyActive bool) ([]dto.ServiceResponse, error) {
	services, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	return dto.ToServiceResponses(services), nil
}

// Deactivate soft delete.
func (uc *ServiceUseCase) Deactivate(id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}
