package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange intervalo de datas dos relatórios. Start/End nulos = sem limite.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// TodayAppointmentRow linha da lista de agendamentos do dia no dashboard.
type TodayAppointmentRow struct {
	ID          string
	ClientName  string
	ServiceName string
	Time        string
	Status      string
	Price       decimal.Decimal
}

// CategoryTotal total agregado por categoria ou forma de pagamento.
type CategoryTotal struct {
	Key   string
	Total decimal.Decimal
}

// FinancialReportResult agregados do relatório financeiro.
type FinancialReportResult struct {
	TotalIncome           decimal.Decimal
	IncomeCount           int
	TotalExpenses         decimal.Decimal
	ExpenseCount          int
	IncomeByCategory      []CategoryTotal
	ExpensesByCategory    []CategoryTotal
	IncomeByPaymentMethod []CategoryTotal
}

// ServiceStatRow desempenho de um serviço do catálogo.
type ServiceStatRow struct {
	ID                string
	Name              string
	Category          string
	Price             decimal.Decimal
	TotalAppointments int
	TotalRevenue      decimal.Decimal
}

// ProfessionalStatRow desempenho e comissão de um profissional.
type ProfessionalStatRow struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	CommissionRate    decimal.Decimal
	TotalAppointments int
	TotalRevenue      decimal.Decimal
	TotalCommission   decimal.Decimal
}

// CommissionRow comissão de um atendimento individual.
type CommissionRow struct {
	AppointmentID   string
	Date            time.Time
	Time            string
	ClientName      string
	ServiceName     string
	ServicePrice    decimal.Decimal
	CommissionRate  decimal.Decimal
	CommissionValue decimal.Decimal
	Status          string
}

// ClientsReportResult agregados do relatório de clientes.
type ClientsReportResult struct {
	TotalClients  int
	ActiveClients int
	AvgSpent      decimal.Decimal
	AvgVisits     decimal.Decimal
	NewClients30d int
	TopClients    []TopClientRow
}

// TopClientRow cliente ordenado por total gasto.
type TopClientRow struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	TotalVisits int
	TotalSpent  decimal.Decimal
}

// ProductStockRow situação de estoque de um produto de revenda.
type ProductStockRow struct {
	ID           string
	Name         string
	Category     string
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	SalePrice    *decimal.Decimal
	NeedsRestock bool
}

// MovementSummaryRow contagem e volume por tipo de movimentação.
type MovementSummaryRow struct {
	Type          string
	Count         int
	TotalQuantity decimal.Decimal
}

// AppointmentStatusRow contagem e receita por status de agendamento.
type AppointmentStatusRow struct {
	Status       string
	Count        int
	TotalRevenue decimal.Decimal
}

// DayCountRow contagem por dia.
type DayCountRow struct {
	Day   string // "2006-01-02"
	Count int
}

// HourCountRow contagem por hora de início.
type HourCountRow struct {
	Hour  string // "08".."20"
	Count int
}

// AnalyticsRepository consultas read-only para dashboard, relatórios e comissões.
// Nenhum método modifica dados.
type AnalyticsRepository interface {
	// ── Dashboard ────────────────────────────────────────────────────────────
	CountAppointmentsOn(ctx context.Context, day time.Time) (int, error)
	SumCompletedAppointmentRevenueOn(ctx context.Context, day time.Time) (decimal.Decimal, error)
	// SumPaidIncomeOn soma INCOME/PAID com paid_date (ou created_at) no dia.
	SumPaidIncomeOn(ctx context.Context, day time.Time) (decimal.Decimal, error)
	// SumPaidIncomeInMonth soma INCOME/PAID criados no mês (YYYY-MM).
	SumPaidIncomeInMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)
	CountAppointmentsInMonth(ctx context.Context, year int, month time.Month) (int, error)
	// CountActiveClientsSince clientes distintos com agendamento desde a data.
	CountActiveClientsSince(ctx context.Context, since time.Time) (int, error)
	CountClients(ctx context.Context) (int, error)
	ListAppointmentsOn(ctx context.Context, day time.Time) ([]TodayAppointmentRow, error)

	// ── Relatórios ───────────────────────────────────────────────────────────
	FinancialReport(ctx context.Context, r DateRange) (*FinancialReportResult, error)
	ServicesReport(ctx context.Context, r DateRange) ([]ServiceStatRow, error)
	ProfessionalsReport(ctx context.Context, r DateRange) ([]ProfessionalStatRow, error)
	ClientsReport(ctx context.Context) (*ClientsReportResult, error)
	ProductsReport(ctx context.Context, r DateRange) ([]ProductStockRow, []MovementSummaryRow, error)
	AppointmentsReport(ctx context.Context, r DateRange) ([]AppointmentStatusRow, []DayCountRow, []HourCountRow, error)

	// ── Comissões ────────────────────────────────────────────────────────────
	CommissionSummaries(ctx context.Context, professionalID string, r DateRange, status string) ([]ProfessionalStatRow, error)
	CommissionDetails(ctx context.Context, professionalID string, r DateRange, status string) ([]CommissionRow, error)
}
