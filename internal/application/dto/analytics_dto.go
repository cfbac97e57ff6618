package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ── Dashboard ────────────────────────────────────────────────────────────────

// DashboardMetricsResponse resposta de GET /api/dashboard/metrics.
// Crescimentos em percentual, arredondados a uma casa; clientsGrowth sempre 0
// (base de comparação de cadastros ainda não existe).
type DashboardMetricsResponse struct {
	TodayRevenue       decimal.Decimal          `json:"todayRevenue"`
	TodayAppointments  int                      `json:"todayAppointments"`
	ActiveClients      int                      `json:"activeClients"`
	MonthRevenue       decimal.Decimal          `json:"monthRevenue"`
	RevenueGrowth      decimal.Decimal          `json:"revenueGrowth"`
	AppointmentsGrowth decimal.Decimal          `json:"appointmentsGrowth"`
	ClientsGrowth      decimal.Decimal          `json:"clientsGrowth"`
	TotalClients       int                      `json:"totalClients"`
	AppointmentsList   []TodayAppointmentEntry  `json:"appointmentsList"`
}

// TodayAppointmentEntry agendamento do dia na lista do dashboard.
type TodayAppointmentEntry struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"clientName"`
	ServiceName string          `json:"serviceName"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
}

// ── Relatórios ───────────────────────────────────────────────────────────────

// CategoryTotalEntry total por categoria ou forma de pagamento.
type CategoryTotalEntry struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// FinancialReportResponse relatório type=financial.
type FinancialReportResponse struct {
	Summary struct {
		TotalIncome       decimal.Decimal `json:"totalIncome"`
		TotalExpenses     decimal.Decimal `json:"totalExpenses"`
		NetProfit         decimal.Decimal `json:"netProfit"`
		TransactionsCount int             `json:"transactionsCount"`
	} `json:"summary"`
	IncomeByCategory      []CategoryTotalEntry `json:"incomeByCategory"`
	ExpensesByCategory    []CategoryTotalEntry `json:"expensesByCategory"`
	IncomeByPaymentMethod []CategoryTotalEntry `json:"incomeByPaymentMethod"`
}

// ServiceStatEntry desempenho de um serviço.
type ServiceStatEntry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	Price             decimal.Decimal `json:"price"`
	TotalAppointments int             `json:"totalAppointments"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
}

// ServicesReportResponse relatório type=services.
type ServicesReportResponse struct {
	ServiceStats []ServiceStatEntry `json:"serviceStats"`
	TopServices  []ServiceStatEntry `json:"topServices"`
}

// ProfessionalStatEntry desempenho e comissão de um profissional.
type ProfessionalStatEntry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	CommissionRate    decimal.Decimal `json:"commissionRate"`
	TotalAppointments int             `json:"totalAppointments"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCommission   decimal.Decimal `json:"totalCommission"`
}

// ProfessionalsReportResponse relatório type=professionals.
type ProfessionalsReportResponse struct {
	ProfessionalStats []ProfessionalStatEntry `json:"professionalStats"`
}

// ClientsReportResponse relatório type=clients.
type ClientsReportResponse struct {
	Summary struct {
		TotalClients  int             `json:"totalClients"`
		ActiveClients int             `json:"activeClients"`
		AvgSpent      decimal.Decimal `json:"avgSpent"`
		AvgVisits     decimal.Decimal `json:"avgVisits"`
	} `json:"summary"`
	TopClients []TopClientEntry `json:"topClients"`
	NewClients struct {
		Count int `json:"count"`
	} `json:"newClients"`
}

// TopClientEntry cliente ordenado por total gasto.
type TopClientEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	TotalVisits int             `json:"totalVisits"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
}

// ProductStockEntry situação de estoque de um produto de revenda.
type ProductStockEntry struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category,omitempty"`
	CurrentStock decimal.Decimal  `json:"currentStock"`
	MinStock     decimal.Decimal  `json:"minStock"`
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	NeedsRestock bool             `json:"needsRestock"`
}

// MovementSummaryEntry volume por tipo de movimentação no período.
type MovementSummaryEntry struct {
	Type          string          `json:"type"`
	Count         int             `json:"count"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
}

// ProductsReportResponse relatório type=products.
type ProductsReportResponse struct {
	ProductStats     []ProductStockEntry    `json:"productStats"`
	LowStockProducts []ProductStockEntry    `json:"lowStockProducts"`
	StockMovements   []MovementSummaryEntry `json:"stockMovements"`
}

// AppointmentsReportResponse relatório type=appointments.
type AppointmentsReportResponse struct {
	AppointmentStats []AppointmentStatusEntry `json:"appointmentStats"`
	AppointmentsByDay  []DayCountEntry        `json:"appointmentsByDay"`
	AppointmentsByHour []HourCountEntry       `json:"appointmentsByHour"`
}

// AppointmentStatusEntry contagem e receita por status.
type AppointmentStatusEntry struct {
	Status       string          `json:"status"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// DayCountEntry contagem por dia ("YYYY-MM-DD").
type DayCountEntry struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// HourCountEntry contagem por hora de início ("08".."20").
type HourCountEntry struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// ── Comissões ────────────────────────────────────────────────────────────────

// CommissionsResponse resposta de GET /api/commissions sem professionalId:
// o resumo agregado e a lista por profissional.
type CommissionsResponse struct {
	Summary     CommissionsSummary      `json:"summary"`
	Commissions []ProfessionalStatEntry `json:"commissions"`
}

// CommissionsSummary agregado de todos os profissionais ativos.
type CommissionsSummary struct {
	TotalProfessionals int             `json:"totalProfessionals"`
	TotalAppointments  int             `json:"totalAppointments"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalCommission    decimal.Decimal `json:"totalCommission"`
}

// ProfessionalCommissionsResponse resposta com professionalId: o resumo do
// profissional e o detalhe atendimento a atendimento.
type ProfessionalCommissionsResponse struct {
	Professional *ProfessionalStatEntry `json:"professional"`
	Commissions  []CommissionEntry      `json:"commissions"`
}

// CommissionEntry comissão de um atendimento individual.
type CommissionEntry struct {
	AppointmentID   string          `json:"appointmentId"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	ClientName      string          `json:"clientName"`
	ServiceName     string          `json:"serviceName"`
	ServicePrice    decimal.Decimal `json:"servicePrice"`
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	CommissionValue decimal.Decimal `json:"commissionValue"`
	Status          string          `json:"status"`
}

// CalculateCommissionRequest body para POST /api/commissions.
type CalculateCommissionRequest struct {
	ProfessionalID string           `json:"professionalId"`
	ServicePrice   *decimal.Decimal `json:"servicePrice"`
}

// CalculateCommissionResponse simulação de comissão de um atendimento.
type CalculateCommissionResponse struct {
	ProfessionalID   string          `json:"professionalId"`
	ProfessionalName string          `json:"professionalName"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	ServicePrice     decimal.Decimal `json:"servicePrice"`
	CommissionValue  decimal.Decimal `json:"commissionValue"`
}

// UpdateCommissionRateRequest body para PUT /api/commissions.
type UpdateCommissionRateRequest struct {
	ProfessionalID string           `json:"professionalId"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
}

// ── Conversões das linhas cruas do repositório ───────────────────────────────

// ToCategoryTotalEntries converte os agregados por chave.
func ToCategoryTotalEntries(rows []repository.CategoryTotal) []CategoryTotalEntry {
	out := make([]CategoryTotalEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategoryTotalEntry{Key: r.Key, Total: r.Total})
	}
	return out
}

// ToServiceStatEntries converte o desempenho dos serviços.
func ToServiceStatEntries(rows []repository.ServiceStatRow) []ServiceStatEntry {
	out := make([]ServiceStatEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, ServiceStatEntry{
			ID:                r.ID,
			Name:              r.Name,
			Category:          r.Category,
			Price:             r.Price,
			TotalAppointments: r.TotalAppointments,
			TotalRevenue:      r.TotalRevenue,
		})
	}
	return out
}

// ToProfessionalStatEntries converte o desempenho dos profissionais.
func ToProfessionalStatEntries(rows []repository.ProfessionalStatRow) []ProfessionalStatEntry {
	out := make([]ProfessionalStatEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProfessionalStatEntry{
			ID:                r.ID,
			Name:              r.Name,
			Email:             r.Email,
			Phone:             r.Phone,
			CommissionRate:    r.CommissionRate,
			TotalAppointments: r.TotalAppointments,
			TotalRevenue:      r.TotalRevenue,
			TotalCommission:   r.TotalCommission,
		})
	}
	return out
}
