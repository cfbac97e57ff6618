package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// AppointmentUseCase CRUD da agenda. Os nomes de cliente, profissional e
// serviço são resolvidos na criação e gravados desnormalizados no agendamento.
type AppointmentUseCase struct {
	repo             repository.AppointmentRepository
	clientRepo       repository.ClientRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
}

// NewAppointmentUseCase constrói o caso de uso.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:             repo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
	}
}

// Create cria um agendamento SCHEDULED, resolvendo os nomes desnormalizados.
func (uc *AppointmentUseCase) Create(in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.ClientID == "" || in.ProfessionalID == "" || in.ServiceID == "" || in.Date == "" || in.Time == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil || date == nil {
		return nil, domain.ErrInvalidInput
	}

	appointment := &entity.Appointment{
		ID:               entity.NewID("apt"),
		ClientID:         in.ClientID,
		ClientName:       in.ClientName,
		ProfessionalID:   in.ProfessionalID,
		ProfessionalName: in.ProfessionalName,
		ServiceID:        in.ServiceID,
		ServiceName:      in.ServiceName,
		Date:             *date,
		Time:             in.Time,
		Duration:         in.Duration,
		Price:            in.Price,
		Status:           entity.AppointmentScheduled,
		Notes:            in.Notes,
		CreatedAt:        time.Now(),
	}
	if in.Status != "" {
		appointment.Status = in.Status
	}
	if err := uc.fillNames(appointment); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(appointment); err != nil {
		return nil, err
	}
	resp := dto.ToAppointmentResponse(appointment)
	return &resp, nil
}

// fillNames resolve os nomes que não vieram no request.
func (uc *AppointmentUseCase) fillNames(a *entity.Appointment) error {
	if a.ClientName == "" {
		client, err := uc.clientRepo.GetByID(a.ClientID)
		if err != nil {
			return err
		}
		if client != nil {
			a.ClientName = client.Name
		}
	}
	if a.ProfessionalName == "" {
		professional, err := uc.professionalRepo.GetByID(a.ProfessionalID)
		if err != nil {
			return err
		}
		if professional != nil {
			a.ProfessionalName = professional.Name
		}
	}
	if a.ServiceName == "" {
		service, err := uc.serviceRepo.GetByID(a.ServiceID)
		if err != nil {
			return err
		}
		if service != nil {
			a.ServiceName = service.Name
			if a.Duration == 0 {
				a.Duration = service.Duration
			}
			if a.Price.IsZero() {
				a.Price = service.Price
			}
		}
	}
	return nil
}

// GetByID busca um agendamento por ID.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}
	resp := dto.ToAppointmentResponse(appointment)
	return &resp, nil
}

// Update atualiza um agendamento (reagendamento, mudança de status).
func (uc *AppointmentUseCase) Update(id string, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}
	if in.Date != "" {
		date, err := dto.ParseDate(in.Date)
		if err != nil || date == nil {
			return nil, domain.ErrInvalidInput
		}
		appointment.Date = *date
	}
	if in.Time != "" {
		appointment.Time = in.Time
	}
	if in.ClientID != "" && in.ClientID != appointment.ClientID {
		appointment.ClientID = in.ClientID
		appointment.ClientName = in.ClientName
	}
	if in.ProfessionalID != "" && in.ProfessionalID != appointment.ProfessionalID {
		appointment.ProfessionalID = in.ProfessionalID
		appointment.ProfessionalName = in.ProfessionalName
	}
	if in.ServiceID != "" && in.ServiceID != appointment.ServiceID {
		appointment.ServiceID = in.ServiceID
		appointment.ServiceName = in.ServiceName
	}
	if in.Duration > 0 {
		appointment.Duration = in.Duration
	}
	if !in.Price.IsZero() {
		appointment.Price = in.Price
	}
	if in.Status != "" {
		appointment.Status = in.Status
	}
	appointment.Notes = in.Notes
	if err := uc.fillNames(appointment); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(appointment); err != nil {
		return nil, err
	}
	resp := dto.ToAppointmentResponse(appointment)
	return &resp, nil
}

// List lista agendamentos com filtros de data, profissional e status.
func (uc *AppointmentUseCase) List(filter repository.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	appointments, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.ToAppointmentResponses(appointments), nil
}

// Delete remove um agendamento.
func (uc *AppointmentUseCase) Delete(id string) error {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
