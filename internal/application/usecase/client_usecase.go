package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes e reconciliação dos agregados de venda.
// TotalVisits/TotalSpent/LastVisit são mantidos pelo motor de vendas; aqui
// eles só são tocados pela reconciliação, que recalcula a partir do histórico.
type ClientUseCase struct {
	repo     repository.ClientRepository
	saleRepo repository.SaleRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository, saleRepo repository.SaleRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, saleRepo: saleRepo}
}

// Create cria um cliente. Email é único entre ativos; segmento default NEW.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	birthdate, err := dto.ParseDate(in.Birthdate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	segment := in.Segment
	if segment == "" {
		segment = entity.SegmentNew
	}

	client := &entity.Client{
		ID:         entity.NewID("cli"),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Birthdate:  birthdate,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
		Notes:      in.Notes,
		Segment:    segment,
		Tags:       in.Tags,
		Source:     in.Source,
		AssignedTo: in.AssignedTo,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// GetByID busca um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// Update atualiza os dados cadastrais e de CRM; os agregados de venda ficam como estão.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Email != "" && in.Email != client.Email {
		other, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		client.Email = in.Email
	}
	birthdate, err := dto.ParseDate(in.Birthdate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lastContact, err := dto.ParseDate(in.LastContactDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	nextFollowUp, err := dto.ParseDate(in.NextFollowUp)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	client.Name = in.Name
	client.Phone = in.Phone
	client.Birthdate = birthdate
	client.Address = in.Address
	client.City = in.City
	client.State = in.State
	client.ZipCode = in.ZipCode
	client.Notes = in.Notes
	if in.Segment != "" {
		client.Segment = in.Segment
	}
	client.Tags = in.Tags
	client.Source = in.Source
	client.LastContactDate = lastContact
	client.NextFollowUp = nextFollowUp
	client.AssignedTo = in.AssignedTo

	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// List lista clientes ativos, com busca e filtro de segmento.
func (uc *ClientUseCase) List(filter repository.ClientFilter) ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.ToClientResponses(clients), nil
}

// Deactivate soft delete: o cliente some das listagens mas o histórico fica.
func (uc *ClientUseCase) Deactivate(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// ReconcileStats recalcula os agregados do cliente a partir das vendas
// COMPLETED e grava o resultado. Corrige contadores que derivaram (vendas em
// modo não atômico interrompidas no meio, ajustes manuais no banco).
func (uc *ClientUseCase) ReconcileStats(id string) (*dto.ReconcileStatsResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	stats, err := uc.saleRepo.StatsByClient(id)
	if err != nil {
		return nil, err
	}

	before := dto.ClientStatsValues{
		TotalVisits: client.TotalVisits,
		TotalSpent:  client.TotalSpent,
		LastVisit:   dto.FormatDate(client.LastVisit),
	}
	after := dto.ClientStatsValues{
		TotalVisits: stats.Visits,
		TotalSpent:  stats.Spent,
		LastVisit:   dto.FormatDate(stats.LastVisit),
	}
	changed := before.TotalVisits != after.TotalVisits ||
		!before.TotalSpent.Equal(after.TotalSpent) ||
		before.LastVisit != after.LastVisit

	if changed {
		if err := uc.repo.UpdateStats(id, stats.Visits, stats.Spent, stats.LastVisit); err != nil {
			return nil, err
		}
	}

	return &dto.ReconcileStatsResponse{
		ClientID: id,
		Before:   before,
		After:    after,
		Changed:  changed,
	}, nil
}
