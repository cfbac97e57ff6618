package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de dashboard, relatórios e comissões.
// Toda a agregação acontece no PostgreSQL; o Go só transporta as linhas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador de consultas analíticas.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// rangeFilter devolve o fragmento SQL do intervalo sobre a coluna dada,
// acrescentando os argumentos. Intervalo aberto devolve fragmento vazio.
func rangeFilter(column string, r repository.DateRange, args *[]any) string {
	filter := ""
	if r.Start != nil {
		*args = append(*args, *r.Start)
		filter += fmt.Sprintf(" AND %s >= $%d", column, len(*args))
	}
	if r.End != nil {
		*args = append(*args, *r.End)
		filter += fmt.Sprintf(" AND %s < $%d", column, len(*args))
	}
	return filter
}

// ── Dashboard ────────────────────────────────────────────────────────────────

// CountAppointmentsOn conta os agendamentos do dia.
func (r *AnalyticsRepo) CountAppointmentsOn(ctx context.Context, day time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE date = $1::date`, day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return count, nil
}

// SumCompletedAppointmentRevenueOn soma o preço dos agendamentos COMPLETED do dia.
func (r *AnalyticsRepo) SumCompletedAppointmentRevenueOn(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(price), 0) FROM appointments WHERE date = $1::date AND status = $2`,
		day, entity.AppointmentCompleted,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum appointment revenue: %w", err)
	}
	return total, nil
}

// SumPaidIncomeOn soma INCOME/PAID com pagamento (ou criação) no dia.
func (r *AnalyticsRepo) SumPaidIncomeOn(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE COALESCE(paid_date, created_at::date) = $1::date
		AND type = 'INCOME' AND status = 'PAID'`, day,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum paid income: %w", err)
	}
	return total, nil
}

// SumPaidIncomeInMonth soma INCOME/PAID criados no mês.
func (r *AnalyticsRepo) SumPaidIncomeInMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE to_char(created_at, 'YYYY-MM') = $1
		AND type = 'INCOME' AND status = 'PAID'`,
		fmt.Sprintf("%04d-%02d", year, month),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum month income: %w", err)
	}
	return total, nil
}

// CountAppointmentsInMonth conta os agendamentos do mês.
func (r *AnalyticsRepo) CountAppointmentsInMonth(ctx context.Context, year int, month time.Month) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE to_char(date, 'YYYY-MM') = $1`,
		fmt.Sprintf("%04d-%02d", year, month),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count month appointments: %w", err)
	}
	return count, nil
}

// CountActiveClientsSince clientes distintos com agendamento desde a data.
func (r *AnalyticsRepo) CountActiveClientsSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT client_id) FROM appointments
		WHERE date >= $1::date AND client_id <> ''`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active clients: %w", err)
	}
	return count, nil
}

// CountClients total de clientes cadastrados.
func (r *AnalyticsRepo) CountClients(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}

// ListAppointmentsOn lista a agenda do dia em ordem de horário.
func (r *AnalyticsRepo) ListAppointmentsOn(ctx context.Context, day time.Time) ([]repository.TodayAppointmentRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, client_name, service_name, time, status, price
		FROM appointments WHERE date = $1::date ORDER BY time`, day)
	if err != nil {
		return nil, fmt.Errorf("list today appointments: %w", err)
	}
	defer rows.Close()

	var list []repository.TodayAppointmentRow
	for rows.Next() {
		var row repository.TodayAppointmentRow
		if err := rows.Scan(&row.ID, &row.ClientName, &row.ServiceName, &row.Time, &row.Status, &row.Price); err != nil {
			return nil, fmt.Errorf("scan today appointment: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ── Relatórios ───────────────────────────────────────────────────────────────

// FinancialReport totais e quebras do livro financeiro (só transações PAID).
// O intervalo filtra por data de pagamento, com fallback na criação.
func (r *AnalyticsRepo) FinancialReport(ctx context.Context, dr repository.DateRange) (*repository.FinancialReportResult, error) {
	const dateCol = `COALESCE(paid_date, created_at::date)`
	result := &repository.FinancialReportResult{}

	var args []any
	filter := rangeFilter(dateCol, dr, &args)

	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM transactions
		WHERE type = 'INCOME' AND status = 'PAID'`+filter, args...,
	).Scan(&result.TotalIncome, &result.IncomeCount)
	if err != nil {
		return nil, fmt.Errorf("financial report income: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM transactions
		WHERE type = 'EXPENSE' AND status = 'PAID'`+filter, args...,
	).Scan(&result.TotalExpenses, &result.ExpenseCount)
	if err != nil {
		return nil, fmt.Errorf("financial report expenses: %w", err)
	}

	groupBy := func(txnType, column string) ([]repository.CategoryTotal, error) {
		query := fmt.Sprintf(`
			SELECT %s, COALESCE(SUM(amount), 0) FROM transactions
			WHERE type = '%s' AND status = 'PAID'%s
			GROUP BY %s ORDER BY 2 DESC`, column, txnType, filter, column)
		rows, err := r.q.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("financial report group by %s: %w", column, err)
		}
		defer rows.Close()
		var totals []repository.CategoryTotal
		for rows.Next() {
			var t repository.CategoryTotal
			if err := rows.Scan(&t.Key, &t.Total); err != nil {
				return nil, fmt.Errorf("scan category total: %w", err)
			}
			totals = append(totals, t)
		}
		return totals, rows.Err()
	}

	if result.IncomeByCategory, err = groupBy("INCOME", "category"); err != nil {
		return nil, err
	}
	if result.ExpensesByCategory, err = groupBy("EXPENSE", "category"); err != nil {
		return nil, err
	}
	if result.IncomeByPaymentMethod, err = groupBy("INCOME", "payment_method"); err != nil {
		return nil, err
	}
	return result, nil
}

// ServicesReport desempenho de cada serviço do catálogo no período.
func (r *AnalyticsRepo) ServicesReport(ctx context.Context, dr repository.DateRange) ([]repository.ServiceStatRow, error) {
	var args []any
	filter := rangeFilter("a.date", dr, &args)

	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.name, s.category, s.price,
			COUNT(a.id), COALESCE(SUM(a.price), 0)
		FROM services s
		LEFT JOIN appointments a ON a.service_id = s.id`+filter+`
		GROUP BY s.id, s.name, s.category, s.price
		ORDER BY 6 DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("services report: %w", err)
	}
	defer rows.Close()

	var list []repository.ServiceStatRow
	for rows.Next() {
		var row repository.ServiceStatRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Category, &row.Price,
			&row.TotalAppointments, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan service stat: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ProfessionalsReport desempenho e comissão dos profissionais ativos no período.
func (r *AnalyticsRepo) ProfessionalsReport(ctx context.Context, dr repository.DateRange) ([]repository.ProfessionalStatRow, error) {
	return r.commissionRows(ctx, "", dr, "")
}

// ClientsReport agregados da base de clientes e o top 20 por total gasto.
func (r *AnalyticsRepo) ClientsReport(ctx context.Context) (*repository.ClientsReportResult, error) {
	result := &repository.ClientsReportResult{}

	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE last_visit IS NOT NULL),
			COALESCE(AVG(total_spent), 0),
			COALESCE(AVG(total_visits), 0)
		FROM clients`,
	).Scan(&result.TotalClients, &result.ActiveClients, &result.AvgSpent, &result.AvgVisits)
	if err != nil {
		return nil, fmt.Errorf("clients report summary: %w", err)
	}

	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE created_at >= now() - interval '30 days'`,
	).Scan(&result.NewClients30d)
	if err != nil {
		return nil, fmt.Errorf("clients report new clients: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, name, email, phone, total_visits, total_spent
		FROM clients ORDER BY total_spent DESC LIMIT 20`)
	if err != nil {
		return nil, fmt.Errorf("clients report top: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row repository.TopClientRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Phone, &row.TotalVisits, &row.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan top client: %w", err)
		}
		result.TopClients = append(result.TopClients, row)
	}
	return result, rows.Err()
}

// ProductsReport situação de estoque da revenda e o volume de movimentações no período.
func (r *AnalyticsRepo) ProductsReport(ctx context.Context, dr repository.DateRange) ([]repository.ProductStockRow, []repository.MovementSummaryRow, error) {
	stockRows, err := r.q.Query(ctx, `
		SELECT id, name, category, current_stock, min_stock, sale_price,
			current_stock <= min_stock
		FROM products WHERE type = $1
		ORDER BY (current_stock <= min_stock) DESC, current_stock`, entity.ProductTypeResale)
	if err != nil {
		return nil, nil, fmt.Errorf("products report stock: %w", err)
	}
	defer stockRows.Close()

	var stock []repository.ProductStockRow
	for stockRows.Next() {
		var row repository.ProductStockRow
		if err := stockRows.Scan(&row.ID, &row.Name, &row.Category, &row.CurrentStock,
			&row.MinStock, &row.SalePrice, &row.NeedsRestock); err != nil {
			return nil, nil, fmt.Errorf("scan product stock: %w", err)
		}
		stock = append(stock, row)
	}
	if err := stockRows.Err(); err != nil {
		return nil, nil, err
	}

	var args []any
	filter := rangeFilter("created_at", dr, &args)
	movementRows, err := r.q.Query(ctx, `
		SELECT type, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM stock_movements WHERE 1=1`+filter+`
		GROUP BY type ORDER BY type`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("products report movements: %w", err)
	}
	defer movementRows.Close()

	var movements []repository.MovementSummaryRow
	for movementRows.Next() {
		var row repository.MovementSummaryRow
		if err := movementRows.Scan(&row.Type, &row.Count, &row.TotalQuantity); err != nil {
			return nil, nil, fmt.Errorf("scan movement summary: %w", err)
		}
		movements = append(movements, row)
	}
	return stock, movements, movementRows.Err()
}

// AppointmentsReport quebras da agenda no período: por status, por dia e por hora.
func (r *AnalyticsRepo) AppointmentsReport(ctx context.Context, dr repository.DateRange) ([]repository.AppointmentStatusRow, []repository.DayCountRow, []repository.HourCountRow, error) {
	var args []any
	filter := rangeFilter("date", dr, &args)

	statusRows, err := r.q.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(price), 0)
		FROM appointments WHERE 1=1`+filter+`
		GROUP BY status ORDER BY status`, args...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("appointments report status: %w", err)
	}
	defer statusRows.Close()
	var byStatus []repository.AppointmentStatusRow
	for statusRows.Next() {
		var row repository.AppointmentStatusRow
		if err := statusRows.Scan(&row.Status, &row.Count, &row.TotalRevenue); err != nil {
			return nil, nil, nil, fmt.Errorf("scan appointment status: %w", err)
		}
		byStatus = append(byStatus, row)
	}
	if err := statusRows.Err(); err != nil {
		return nil, nil, nil, err
	}

	dayRows, err := r.q.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), COUNT(*)
		FROM appointments WHERE 1=1`+filter+`
		GROUP BY 1 ORDER BY 1`, args...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("appointments report days: %w", err)
	}
	defer dayRows.Close()
	var byDay []repository.DayCountRow
	for dayRows.Next() {
		var row repository.DayCountRow
		if err := dayRows.Scan(&row.Day, &row.Count); err != nil {
			return nil, nil, nil, fmt.Errorf("scan appointment day: %w", err)
		}
		byDay = append(byDay, row)
	}
	if err := dayRows.Err(); err != nil {
		return nil, nil, nil, err
	}

	hourRows, err := r.q.Query(ctx, `
		SELECT substr(time, 1, 2), COUNT(*)
		FROM appointments WHERE 1=1`+filter+`
		GROUP BY 1 ORDER BY 2 DESC`, args...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("appointments report hours: %w", err)
	}
	defer hourRows.Close()
	var byHour []repository.HourCountRow
	for hourRows.Next() {
		var row repository.HourCountRow
		if err := hourRows.Scan(&row.Hour, &row.Count); err != nil {
			return nil, nil, nil, fmt.Errorf("scan appointment hour: %w", err)
		}
		byHour = append(byHour, row)
	}
	return byStatus, byDay, byHour, hourRows.Err()
}

// ── Comissões ────────────────────────────────────────────────────────────────

// CommissionSummaries resumo por profissional ativo; professionalID restringe
// a um único, status filtra os agendamentos considerados.
func (r *AnalyticsRepo) CommissionSummaries(ctx context.Context, professionalID string, dr repository.DateRange, status string) ([]repository.ProfessionalStatRow, error) {
	return r.commissionRows(ctx, professionalID, dr, status)
}

func (r *AnalyticsRepo) commissionRows(ctx context.Context, professionalID string, dr repository.DateRange, status string) ([]repository.ProfessionalStatRow, error) {
	// Filtros de período e status vão na condição do JOIN para o LEFT JOIN
	// manter os profissionais sem atendimento (com zeros).
	var args []any
	joinFilter := rangeFilter("a.date", dr, &args)
	if status != "" {
		args = append(args, status)
		joinFilter += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	where := " WHERE p.active"
	if professionalID != "" {
		args = append(args, professionalID)
		where = fmt.Sprintf(" WHERE p.id = $%d", len(args))
	}

	query := `
		SELECT p.id, p.name, p.email, p.phone, p.commission_rate,
			COUNT(a.id),
			COALESCE(SUM(a.price), 0),
			COALESCE(SUM(a.price * p.commission_rate / 100), 0)
		FROM professionals p
		LEFT JOIN appointments a ON a.professional_id = p.id` + joinFilter + where + `
		GROUP BY p.id, p.name, p.email, p.phone, p.commission_rate
		ORDER BY 8 DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("commission summaries: %w", err)
	}
	defer rows.Close()

	var list []repository.ProfessionalStatRow
	for rows.Next() {
		var row repository.ProfessionalStatRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Phone, &row.CommissionRate,
			&row.TotalAppointments, &row.TotalRevenue, &row.TotalCommission); err != nil {
			return nil, fmt.Errorf("scan commission summary: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CommissionDetails comissão atendimento a atendimento de um profissional,
// mais recentes primeiro.
func (r *AnalyticsRepo) CommissionDetails(ctx context.Context, professionalID string, dr repository.DateRange, status string) ([]repository.CommissionRow, error) {
	args := []any{professionalID}
	filter := rangeFilter("a.date", dr, &args)
	if status != "" {
		args = append(args, status)
		filter += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	query := `
		SELECT a.id, a.date, a.time, a.client_name, a.service_name, a.price,
			p.commission_rate, a.price * p.commission_rate / 100, a.status
		FROM appointments a
		JOIN professionals p ON p.id = a.professional_id
		WHERE a.professional_id = $1` + filter + `
		ORDER BY a.date DESC, a.time DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("commission details: %w", err)
	}
	defer rows.Close()

	var list []repository.CommissionRow
	for rows.Next() {
		var row repository.CommissionRow
		if err := rows.Scan(&row.AppointmentID, &row.Date, &row.Time, &row.ClientName,
			&row.ServiceName, &row.ServicePrice, &row.CommissionRate, &row.CommissionValue,
			&row.Status); err != nil {
			return nil, fmt.Errorf("scan commission detail: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
