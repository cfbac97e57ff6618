package analytics

import (
	"context"
	"sort"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ReportsUseCase relatórios gerenciais de GET /api/reports.
// Cada tipo devolve um payload próprio; o handler serializa o que vier.
type ReportsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewReportsUseCase constrói o caso de uso.
func NewReportsUseCase(repo repository.AnalyticsRepository) *ReportsUseCase {
	return &ReportsUseCase{repo: repo}
}

// Generate despacha para o relatório pedido. Tipo desconhecido é ErrInvalidInput.
func (uc *ReportsUseCase) Generate(ctx context.Context, reportType string, r repository.DateRange) (any, error) {
	switch reportType {
	case "", "financial":
		return uc.financial(ctx, r)
	case "services":
		return uc.services(ctx, r)
	case "professionals":
		return uc.professionals(ctx, r)
	case "clients":
		return uc.clients(ctx)
	case "products":
		return uc.products(ctx, r)
	case "appointments":
		return uc.appointments(ctx, r)
	}
	return nil, domain.ErrInvalidInput
}

func (uc *ReportsUseCase) financial(ctx context.Context, r repository.DateRange) (*dto.FinancialReportResponse, error) {
	result, err := uc.repo.FinancialReport(ctx, r)
	if err != nil {
		return nil, err
	}
	resp := &dto.FinancialReportResponse{
		IncomeByCategory:      dto.ToCategoryTotalEntries(result.IncomeByCategory),
		ExpensesByCategory:    dto.ToCategoryTotalEntries(result.ExpensesByCategory),
		IncomeByPaymentMethod: dto.ToCategoryTotalEntries(result.IncomeByPaymentMethod),
	}
	resp.Summary.TotalIncome = result.TotalIncome
	resp.Summary.TotalExpenses = result.TotalExpenses
	resp.Summary.NetProfit = result.TotalIncome.Sub(result.TotalExpenses)
	resp.Summary.TransactionsCount = result.IncomeCount + result.ExpenseCount
	return resp, nil
}

func (uc *ReportsUseCase) services(ctx context.Context, r repository.DateRange) (*dto.ServicesReportResponse, error) {
	rows, err := uc.repo.ServicesReport(ctx, r)
	if err != nil {
		return nil, err
	}
	stats := dto.ToServiceStatEntries(rows)

	// Top 10 por número de atendimentos
	top := make([]dto.ServiceStatEntry, len(stats))
	copy(top, stats)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalAppointments > top[j].TotalAppointments
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return &dto.ServicesReportResponse{ServiceStats: stats, TopServices: top}, nil
}

func (uc *ReportsUseCase) professionals(ctx context.Context, r repository.DateRange) (*dto.ProfessionalsReportResponse, error) {
	rows, err := uc.repo.ProfessionalsReport(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.ProfessionalsReportResponse{ProfessionalStats: dto.ToProfessionalStatEntries(rows)}, nil
}

func (uc *ReportsUseCase) clients(ctx context.Context) (*dto.ClientsReportResponse, error) {
	result, err := uc.repo.ClientsReport(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClientsReportResponse{
		TopClients: make([]dto.TopClientEntry, 0, len(result.TopClients)),
	}
	resp.Summary.TotalClients = result.TotalClients
	resp.Summary.ActiveClients = result.ActiveClients
	resp.Summary.AvgSpent = result.AvgSpent
	resp.Summary.AvgVisits = result.AvgVisits
	resp.NewClients.Count = result.NewClients30d
	for _, c := range result.TopClients {
		resp.TopClients = append(resp.TopClients, dto.TopClientEntry{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			TotalVisits: c.TotalVisits,
			TotalSpent:  c.TotalSpent,
		})
	}
	return resp, nil
}

func (uc *ReportsUseCase) products(ctx context.Context, r repository.DateRange) (*dto.ProductsReportResponse, error) {
	stockRows, movementRows, err := uc.repo.ProductsReport(ctx, r)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductsReportResponse{
		ProductStats:     make([]dto.ProductStockEntry, 0, len(stockRows)),
		LowStockProducts: make([]dto.ProductStockEntry, 0),
		StockMovements:   make([]dto.MovementSummaryEntry, 0, len(movementRows)),
	}
	for _, row := range stockRows {
		entry := dto.ProductStockEntry{
			ID:           row.ID,
			Name:         row.Name,
			Category:     row.Category,
			CurrentStock: row.CurrentStock,
			MinStock:     row.MinStock,
			SalePrice:    row.SalePrice,
			NeedsRestock: row.NeedsRestock,
		}
		resp.ProductStats = append(resp.ProductStats, entry)
		if row.NeedsRestock {
			resp.LowStockProducts = append(resp.LowStockProducts, entry)
		}
	}
	for _, row := range movementRows {
		resp.StockMovements = append(resp.StockMovements, dto.MovementSummaryEntry{
			Type:          row.Type,
			Count:         row.Count,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return resp, nil
}

func (uc *ReportsUseCase) appointments(ctx context.Context, r repository.DateRange) (*dto.AppointmentsReportResponse, error) {
	statusRows, dayRows, hourRows, err := uc.repo.AppointmentsReport(ctx, r)
	if err != nil {
		return nil, err
	}
	resp := &dto.AppointmentsReportResponse{
		AppointmentStats:   make([]dto.AppointmentStatusEntry, 0, len(statusRows)),
		AppointmentsByDay:  make([]dto.DayCountEntry, 0, len(dayRows)),
		AppointmentsByHour: make([]dto.HourCountEntry, 0, len(hourRows)),
	}
	for _, row := range statusRows {
		resp.AppointmentStats = append(resp.AppointmentStats, dto.AppointmentStatusEntry{
			Status:       row.Status,
			Count:        row.Count,
			TotalRevenue: row.TotalRevenue,
		})
	}
	for _, row := range dayRows {
		resp.AppointmentsByDay = append(resp.AppointmentsByDay, dto.DayCountEntry{Day: row.Day, Count: row.Count})
	}
	for _, row := range hourRows {
		resp.AppointmentsByHour = append(resp.AppointmentsByHour, dto.HourCountEntry{Hour: row.Hour, Count: row.Count})
	}
	return resp, nil
}
