package cache

import (
	"context"
	"time"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/application/dto"
)

var _ analytics.DashboardCache = (*Noop)(nil)

// Noop implementação vazia do cache do dashboard, usada quando o Redis não
// está configurado (REDIS_ADDR vazio). Todas as leituras são miss.
type Noop struct{}

// NewNoop constrói o cache vazio.
func NewNoop() *Noop {
	return &Noop{}
}

// GetMetrics sempre devolve miss.
func (*Noop) GetMetrics(context.Context) (*dto.DashboardMetricsResponse, bool) {
	return nil, false
}

// SetMetrics descarta o valor.
func (*Noop) SetMetrics(context.Context, *dto.DashboardMetricsResponse, time.Duration) {}
