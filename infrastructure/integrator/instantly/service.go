package instantly

import (
	"context"

	"github.com/sirupsen/logrus"
	instantlydomain "github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly/domain"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly/instantlyclient"
)

// HealthStatus é a resposta de GET /api/metrics/health
type HealthStatus struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Integrator interface {
	GetDailyAnalytics(ctx context.Context, startDate, endDate string) ([]instantlydomain.DailyAnalytics, error)
	GetCampaignAnalytics(ctx context.Context, startDate, endDate string) ([]instantlydomain.CampaignAnalytics, error)
	GetAggregateAnalytics(ctx context.Context, startDate, endDate string) (*instantlydomain.AggregateTotals, error)
	GetTotalSendsForDate(ctx context.Context, date string) int64
	HealthCheck(ctx context.Context) HealthStatus
}

type InstantlyIntegrator struct {
	Client instantlyclient.Client
}

func New(client instantlyclient.Client) *InstantlyIntegrator {
	return &InstantlyIntegrator{
		Client: client,
	}
}

func (s *InstantlyIntegrator) GetDailyAnalytics(ctx context.Context, startDate, endDate string) ([]instantlydomain.DailyAnalytics, error) {
	return s.Client.GetDailyAnalytics(ctx, instantlyclient.AnalyticsParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (s *InstantlyIntegrator) GetCampaignAnalytics(ctx context.Context, startDate, endDate string) ([]instantlydomain.CampaignAnalytics, error) {
	return s.Client.GetCampaignAnalytics(ctx, instantlyclient.AnalyticsParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
}

// GetAggregateAnalytics soma as métricas de todas as campanhas no período
func (s *InstantlyIntegrator) GetAggregateAnalytics(ctx context.Context, startDate, endDate string) (*instantlydomain.AggregateTotals, error) {
	campaigns, err := s.GetCampaignAnalytics(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	totals := instantlydomain.SumCampaigns(campaigns)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate,
		"end_date":   endDate,
		"campaigns":  len(campaigns),
		"sent":       totals.Sent,
	}).Debug("instantly: analytics agregados")

	return &totals, nil
}

// GetTotalSendsForDate retorna os envios do dia. Falhas são registradas e resultam em 0.
func (s *InstantlyIntegrator) GetTotalSendsForDate(ctx context.Context, date string) int64 {
	totals, err := s.GetAggregateAnalytics(ctx, date, date)
	if err != nil {
		logrus.WithField("date", date).WithError(err).Error("instantly: falha ao buscar envios do dia")
		return 0
	}

	return totals.Sent
}

func (s *InstantlyIntegrator) HealthCheck(ctx context.Context) HealthStatus {
	if !s.Client.IsConfigured() {
		return HealthStatus{OK: false, Error: "API key not configured"}
	}

	if err := s.Client.ListCampaigns(ctx, 1); err != nil {
		return HealthStatus{OK: false, Error: err.Error()}
	}

	return HealthStatus{OK: true}
}
