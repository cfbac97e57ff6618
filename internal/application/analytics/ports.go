package analytics

import (
	"context"
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// DashboardCache cache de curta duração das métricas do dashboard.
// Implementações: Redis e no-op (quando REDIS_ADDR está vazio).
type DashboardCache interface {
	GetMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, bool)
	SetMetrics(ctx context.Context, metrics *dto.DashboardMetricsResponse, ttl time.Duration)
}

// ResolveDateRange traduz os parâmetros de período dos relatórios para um
// intervalo concreto. startDate/endDate ("YYYY-MM-DD") têm prioridade; senão
// period (today|week|month|year) conta para trás a partir de agora. Qualquer
// outro valor devolve intervalo aberto.
func ResolveDateRange(period, startDate, endDate string) repository.DateRange {
	if startDate != "" && endDate != "" {
		start, errS := dto.ParseDate(startDate)
		end, errE := dto.ParseDate(endDate)
		if errS == nil && errE == nil {
			if end != nil {
				// inclui o dia final inteiro
				e := end.AddDate(0, 0, 1)
				end = &e
			}
			return repository.DateRange{Start: start, End: end}
		}
	}

	now := time.Now()
	var start time.Time
	switch period {
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, 0, -30)
	case "year":
		start = now.AddDate(0, 0, -365)
	default:
		return repository.DateRange{}
	}
	return repository.DateRange{Start: &start}
}
