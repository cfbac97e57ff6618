package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// metricsTTL as métricas do dashboard toleram 30 s de defasagem.
const metricsTTL = 30 * time.Second

// DashboardUseCase monta as métricas da tela inicial: números do dia, receita
// do mês com crescimento sobre o mês anterior e a agenda de hoje.
type DashboardUseCase struct {
	repo  repository.AnalyticsRepository
	cache DashboardCache
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository, cache DashboardCache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

// Metrics devolve as métricas, servindo do cache quando fresco.
// A receita de hoje soma agendamentos COMPLETED do dia e transações
// INCOME/PAID com pagamento hoje.
func (uc *DashboardUseCase) Metrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	if cached, ok := uc.cache.GetMetrics(ctx); ok {
		return cached, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lastMonth := now.AddDate(0, -1, 0)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	todayAppointments, err := uc.repo.CountAppointmentsOn(ctx, today)
	if err != nil {
		return nil, err
	}
	appointmentRevenue, err := uc.repo.SumCompletedAppointmentRevenueOn(ctx, today)
	if err != nil {
		return nil, err
	}
	incomeToday, err := uc.repo.SumPaidIncomeOn(ctx, today)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := uc.repo.SumPaidIncomeInMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}
	lastMonthRevenue, err := uc.repo.SumPaidIncomeInMonth(ctx, lastMonth.Year(), lastMonth.Month())
	if err != nil {
		return nil, err
	}
	monthAppointments, err := uc.repo.CountAppointmentsInMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}
	lastMonthAppointments, err := uc.repo.CountAppointmentsInMonth(ctx, lastMonth.Year(), lastMonth.Month())
	if err != nil {
		return nil, err
	}
	activeClients, err := uc.repo.CountActiveClientsSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	totalClients, err := uc.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}
	todayList, err := uc.repo.ListAppointmentsOn(ctx, today)
	if err != nil {
		return nil, err
	}

	metrics := &dto.DashboardMetricsResponse{
		TodayRevenue:      appointmentRevenue.Add(incomeToday),
		TodayAppointments: todayAppointments,
		ActiveClients:     activeClients,
		MonthRevenue:      monthRevenue,
		RevenueGrowth:     growthPct(monthRevenue, lastMonthRevenue),
		AppointmentsGrowth: growthPct(
			decimal.NewFromInt(int64(monthAppointments)),
			decimal.NewFromInt(int64(lastMonthAppointments)),
		),
		ClientsGrowth:    decimal.Zero,
		TotalClients:     totalClients,
		AppointmentsList: make([]dto.TodayAppointmentEntry, 0, len(todayList)),
	}
	for _, row := range todayList {
		metrics.AppointmentsList = append(metrics.AppointmentsList, dto.TodayAppointmentEntry{
			ID:          row.ID,
			ClientName:  row.ClientName,
			ServiceName: row.ServiceName,
			Time:        row.Time,
			Status:      row.Status,
			Price:       row.Price,
		})
	}

	uc.cache.SetMetrics(ctx, metrics, metricsTTL)
	return metrics, nil
}

// growthPct variação percentual sobre o período anterior, uma casa decimal.
// Base zero devolve 0 (não há referência de comparação).
func growthPct(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
}
