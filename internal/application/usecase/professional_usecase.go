package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ProfessionalUseCase CRUD de profissionais.
type ProfessionalUseCase struct {
	repo repository.ProfessionalRepository
}

// NewProfessionalUseCase constrói o caso de uso.
func NewProfessionalUseCase(repo repository.ProfessionalRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{repo: repo}
}

// Create cria um profissional ativo.
func (uc *ProfessionalUseCase) Create(in dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	professional := &entity.Professional{
		ID:             entity.NewID("prf"),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Specialties:    in.Specialties,
		CommissionRate: in.CommissionRate,
		WorkSchedule:   in.WorkSchedule,
		Active:         true,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(professional); err != nil {
		return nil, err
	}
	resp := dto.ToProfessionalResponse(professional)
	return &resp, nil
}

// GetByID busca um profissional por ID.
func (uc *ProfessionalUseCase) GetByID(id string) (*dto.ProfessionalResponse, error) {
	professional, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, nil
	}
	resp := dto.ToProfessionalResponse(professional)
	return &resp, nil
}

// Update atualiza um profissional.
func (uc *ProfessionalUseCase) Update(id string, in dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, nil
	}
	professional.Name = in.Name
	professional.Email = in.Email
	professional.Phone = in.Phone
	professional.Specialties = in.Specialties
	professional.CommissionRate = in.CommissionRate
	professional.WorkSchedule = in.WorkSchedule
	if in.Active != nil {
		professional.Active = *in.Active
	}
	if err := uc.repo.Update(professional); err != nil {
		return nil, err
	}
	resp := dto.ToProfessionalResponse(professional)
	return &resp, nil
}

// List lista profissionais; onlyActive esconde os desativados.
func (uc *ProfessionalUseCase) List(onlyActive bool) ([]dto.ProfessionalResponse, error) {
	professionals, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	return dto.ToProfessionalResponses(professionals), nil
}

// Deactivate soft delete: agendamentos e comissões históricas ficam.
func (uc *ProfessionalUseCase) Deactivate(id string) error {
	professional, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if professional == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}
