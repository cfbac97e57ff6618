package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// CommissionsUseCase comissões de profissionais: resumo geral, detalhe por
// profissional, simulação e atualização da taxa.
type CommissionsUseCase struct {
	repo             repository.AnalyticsRepository
	professionalRepo repository.ProfessionalRepository
}

// NewCommissionsUseCase constrói o caso de uso.
func NewCommissionsUseCase(
	repo repository.AnalyticsRepository,
	professionalRepo repository.ProfessionalRepository,
) *CommissionsUseCase {
	return &CommissionsUseCase{repo: repo, professionalRepo: professionalRepo}
}

// Overview resumo de comissões de todos os profissionais ativos no período.
// status filtra os agendamentos considerados; "all" ou vazio não filtra.
func (uc *CommissionsUseCase) Overview(ctx context.Context, r repository.DateRange, status string) (*dto.CommissionsResponse, error) {
	if status == "all" {
		status = ""
	}
	rows, err := uc.repo.CommissionSummaries(ctx, "", r, status)
	if err != nil {
		return nil, err
	}

	resp := &dto.CommissionsResponse{
		Commissions: dto.ToProfessionalStatEntries(rows),
	}
	resp.Summary.TotalProfessionals = len(rows)
	resp.Summary.TotalRevenue = decimal.Zero
	resp.Summary.TotalCommission = decimal.Zero
	for _, row := range rows {
		resp.Summary.TotalAppointments += row.TotalAppointments
		resp.Summary.TotalRevenue = resp.Summary.TotalRevenue.Add(row.TotalRevenue)
		resp.Summary.TotalCommission = resp.Summary.TotalCommission.Add(row.TotalCommission)
	}
	return resp, nil
}

// ByProfessional resumo e detalhe atendimento a atendimento de um profissional.
func (uc *CommissionsUseCase) ByProfessional(ctx context.Context, professionalID string, r repository.DateRange, status string) (*dto.ProfessionalCommissionsResponse, error) {
	if status == "all" {
		status = ""
	}
	summaries, err := uc.repo.CommissionSummaries(ctx, professionalID, r, status)
	if err != nil {
		return nil, err
	}
	details, err := uc.repo.CommissionDetails(ctx, professionalID, r, status)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfessionalCommissionsResponse{
		Commissions: make([]dto.CommissionEntry, 0, len(details)),
	}
	if len(summaries) > 0 {
		entries := dto.ToProfessionalStatEntries(summaries[:1])
		resp.Professional = &entries[0]
	}
	for _, row := range details {
		resp.Commissions = append(resp.Commissions, dto.CommissionEntry{
			AppointmentID:   row.AppointmentID,
			Date:            row.Date.Format("2006-01-02"),
			Time:            row.Time,
			ClientName:      row.ClientName,
			ServiceName:     row.ServiceName,
			ServicePrice:    row.ServicePrice,
			CommissionRate:  row.CommissionRate,
			CommissionValue: row.CommissionValue,
			Status:          row.Status,
		})
	}
	return resp, nil
}

// Calculate simula a comissão de um atendimento: price * rate / 100.
func (uc *CommissionsUseCase) Calculate(in dto.CalculateCommissionRequest) (*dto.CalculateCommissionResponse, error) {
	if in.ProfessionalID == "" || in.ServicePrice == nil {
		return nil, domain.ErrInvalidInput
	}
	professional, err := uc.professionalRepo.GetByID(in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil || !professional.Active {
		return nil, domain.ErrNotFound
	}
	value := in.ServicePrice.Mul(professional.CommissionRate).Div(decimal.NewFromInt(100))
	return &dto.CalculateCommissionResponse{
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		CommissionRate:   professional.CommissionRate,
		ServicePrice:     *in.ServicePrice,
		CommissionValue:  value,
	}, nil
}

// UpdateRate atualiza a taxa de comissão de um profissional (0 a 100).
func (uc *CommissionsUseCase) UpdateRate(in dto.UpdateCommissionRateRequest) (*dto.ProfessionalResponse, error) {
	if in.ProfessionalID == "" || in.CommissionRate == nil {
		return nil, domain.ErrInvalidInput
	}
	rate := *in.CommissionRate
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	professional, err := uc.professionalRepo.GetByID(in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, domain.ErrNotFound
	}
	professional.CommissionRate = rate
	if err := uc.professionalRepo.Update(professional); err != nil {
		return nil, err
	}
	resp := dto.ToProfessionalResponse(professional)
	return &resp, nil
}
