package insighting

import (
	"context"

	"github.com/vfg2006/etl-dashboard-api/internal/domain"
)

// MetricsService agrega envios e leads de daily_metrics para o dashboard
//
//go:generate mockgen -source=interfaces.go -destination=mocks/service_mock.go -package=mocks
type MetricsService interface {
	// GetMetricsForAllPeriods calcula as seis janelas fixas, a tendência de 30 dias e a última sincronização
	GetMetricsForAllPeriods(ctx context.Context) (*domain.DashboardMetrics, error)

	// GetMetricsForRange calcula os totais e a tendência de um intervalo informado (YYYY-MM-DD)
	GetMetricsForRange(ctx context.Context, startDate, endDate string) (*domain.RangeMetrics, error)

	// GetMetricsForDate retorna os números de um único dia, com exists=false quando não há linha
	GetMetricsForDate(ctx context.Context, date string) (*domain.DateMetrics, error)

	// UpdateLeadsForDate grava a contagem de leads do dia. Data vazia significa hoje.
	UpdateLeadsForDate(ctx context.Context, date string, leadCount int64, notes *string) (*domain.LeadUpdateResult, error)

	// GetRecentEntries lista os últimos dias registrados, do mais recente para o mais antigo
	GetRecentEntries(ctx context.Context, days int) ([]*domain.RecentEntry, error)
}
