package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negócio expostos em /metrics quando METRICS_ENABLED=true.
var (
	salesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salonx_sales_completed_total",
		Help: "Vendas fechadas com sucesso no PDV.",
	})

	stockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salonx_stock_movements_total",
		Help: "Movimentações de estoque registradas, por tipo.",
	}, []string{"type"})
)
