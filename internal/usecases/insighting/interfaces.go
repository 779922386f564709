package insighting

import (
	"context"

	"github.com/vfg2006/insights-dashboard/internal/domain"
)

// MetricsFetcher busca as métricas agregadas de um período
type MetricsFetcher interface {
	FetchMetrics(ctx context.Context, query domain.MetricsQuery) (*domain.MetricsResponse, error)
}
