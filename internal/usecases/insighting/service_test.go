package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// quarta-feira
var fixedNow = time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockDailyMetricRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricRepository(ctrl)

	return &Service{
		metricRepo: repo,
		location:   time.UTC,
		now:        func() time.Time { return fixedNow },
	}, repo
}

func date(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)
	return parsed
}

func float(v float64) *float64 {
	return &v
}

func TestPeriodFilters(t *testing.T) {
	filters := periodFilters(date("2025-03-12"))

	tests := []struct {
		period        domain.Period
		expectedStart string
		expectedEnd   string
	}{
		{period: domain.PeriodDay, expectedStart: "2025-03-12", expectedEnd: "2025-03-12"},
		{period: domain.PeriodYesterday, expectedStart: "2025-03-11", expectedEnd: "2025-03-11"},
		{period: domain.PeriodWeek, expectedStart: "2025-03-09"},
		{period: domain.PeriodMonth, expectedStart: "2025-03-01"},
		{period: domain.PeriodYear, expectedStart: "2024-03-12"},
		{period: domain.PeriodAllTime},
	}

	require.Len(t, filters, len(domain.AllPeriods))

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			filter := filters[tt.period]

			if tt.expectedStart == "" {
				assert.Nil(t, filter.StartDate)
			} else {
				require.NotNil(t, filter.StartDate)
				assert.Equal(t, tt.expectedStart, filter.StartDate.Format(time.DateOnly))
			}

			if tt.expectedEnd == "" {
				assert.Nil(t, filter.EndDate)
			} else {
				require.NotNil(t, filter.EndDate)
				assert.Equal(t, tt.expectedEnd, filter.EndDate.Format(time.DateOnly))
			}
		})
	}
}

func TestGetMetricsForAllPeriods(t *testing.T) {
	t.Run("Calcula as razões de cada período e a tendência", func(t *testing.T) {
		service, repo := newTestService(t)
		synced := fixedNow.Add(-10 * time.Minute)

		repo.EXPECT().Totals(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.DateFilter) (*domain.MetricTotals, error) {
				if filter.StartDate == nil {
					return &domain.MetricTotals{Sends: 10000, Leads: 40, Days: 70}, nil
				}
				return &domain.MetricTotals{Sends: 1000, Leads: 3, Days: 1}, nil
			}).Times(len(domain.AllPeriods))

		repo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.DateFilter) ([]*domain.DailyMetric, error) {
				assert.Equal(t, "2025-02-10", filter.StartDate.Format(time.DateOnly))
				return []*domain.DailyMetric{
					{Date: date("2025-03-11"), EmailsSent: 500, LeadsGenerated: 5, ETLRatio: float(0.01)},
					{Date: date("2025-03-12"), EmailsSent: 300},
				}, nil
			})

		repo.EXPECT().GetLastSyncedAt(gomock.Any()).Return(&synced, nil)

		metrics, err := service.GetMetricsForAllPeriods(context.Background())

		require.NoError(t, err)
		assert.Len(t, metrics.Periods, len(domain.AllPeriods))
		assert.Equal(t, int64(333), metrics.Periods[domain.PeriodDay].SendsPerLead)
		assert.InDelta(t, 0.003, metrics.Periods[domain.PeriodDay].ETLRatio, 1e-9)
		assert.Equal(t, int64(250), metrics.Periods[domain.PeriodAllTime].SendsPerLead)
		assert.Equal(t, "2025-03-12", metrics.Today.Date)
		assert.Equal(t, int64(1000), metrics.Today.Sends)
		assert.Equal(t, &synced, metrics.LastSyncedAt)

		require.Len(t, metrics.Trend, 2)
		assert.Equal(t, "2025-03-11", metrics.Trend[0].Date)
		assert.Equal(t, 0.01, metrics.Trend[0].ETLRatio)
		assert.Equal(t, float64(0), metrics.Trend[1].ETLRatio)
	})

	t.Run("Erro em uma janela falha a requisição inteira", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().Totals(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida")).AnyTimes()
		repo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().GetLastSyncedAt(gomock.Any()).Return(nil, nil).AnyTimes()

		metrics, err := service.GetMetricsForAllPeriods(context.Background())

		assert.Error(t, err)
		assert.Nil(t, metrics)
	})
}

func TestGetMetricsForRange(t *testing.T) {
	tests := []struct {
		name          string
		start         string
		end           string
		expectedError error
	}{
		{name: "Data inicial malformada", start: "2025-3-01", end: "2025-03-10", expectedError: ErrInvalidDate},
		{name: "Data final malformada", start: "2025-03-01", end: "ontem", expectedError: ErrInvalidDate},
		{name: "Intervalo invertido", start: "2025-03-10", end: "2025-03-01", expectedError: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			result, err := service.GetMetricsForRange(context.Background(), tt.start, tt.end)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, result)
		})
	}

	t.Run("Soma o intervalo e monta a tendência", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().Totals(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.DateFilter) (*domain.MetricTotals, error) {
				assert.True(t, filter.IsBounded())
				return &domain.MetricTotals{Sends: 4000, Leads: 16, Days: 10}, nil
			})
		repo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any()).Return([]*domain.DailyMetric{
			{Date: date("2025-03-01"), EmailsSent: 400, LeadsGenerated: 2, ETLRatio: float(0.005)},
		}, nil)

		result, err := service.GetMetricsForRange(context.Background(), "2025-03-01", "2025-03-10")

		require.NoError(t, err)
		assert.Equal(t, int64(10), result.Days)
		assert.Equal(t, int64(250), result.SendsPerLead)
		assert.Equal(t, 0.004, result.ETLRatio)
		assert.Len(t, result.Trend, 1)
	})
}

func TestUpdateLeadsForDate(t *testing.T) {
	t.Run("Primeiro registro do dia sem envios mantém as razões em zero", func(t *testing.T) {
		service, repo := newTestService(t)
		rows := map[string]*domain.DailyMetric{}

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, day time.Time, apply repository.ApplyFunc) (*domain.DailyMetric, bool, error) {
				key := day.Format(time.DateOnly)
				metric, ok := rows[key]
				if !ok {
					metric = &domain.DailyMetric{Date: day}
					rows[key] = metric
				}
				return metric, !ok, apply(metric)
			})
		repo.EXPECT().GetByDate(gomock.Any(), date("2025-03-01")).
			DoAndReturn(func(_ context.Context, day time.Time) (*domain.DailyMetric, error) {
				return rows[day.Format(time.DateOnly)], nil
			})

		result, err := service.UpdateLeadsForDate(context.Background(), "2025-03-01", 12, nil)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(0), result.PreviousLeadCount)
		assert.Equal(t, int64(12), result.NewLeadCount)
		assert.Equal(t, float64(0), result.NewETLRatio)

		metrics, err := service.GetMetricsForDate(context.Background(), "2025-03-01")

		require.NoError(t, err)
		assert.True(t, metrics.Exists)
		assert.Equal(t, int64(12), metrics.Leads)
		assert.Equal(t, int64(0), metrics.SendsPerLead)
		assert.Equal(t, float64(0), metrics.ETLRatio)
	})

	t.Run("Retorna a contagem anterior e a nova razão", func(t *testing.T) {
		service, repo := newTestService(t)
		existing := &domain.DailyMetric{Date: date("2025-03-12"), EmailsSent: 1000, LeadsGenerated: 4}
		notes := "evento"

		repo.EXPECT().Upsert(gomock.Any(), date("2025-03-12"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ time.Time, apply repository.ApplyFunc) (*domain.DailyMetric, bool, error) {
				return existing, false, apply(existing)
			})

		result, err := service.UpdateLeadsForDate(context.Background(), "", 10, &notes)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-12", result.Date)
		assert.Equal(t, int64(4), result.PreviousLeadCount)
		assert.Equal(t, 0.01, result.NewETLRatio)
		assert.Equal(t, &notes, existing.Notes)
		require.NotNil(t, existing.SendsPerLead)
		assert.Equal(t, float64(100), *existing.SendsPerLead)
	})

	t.Run("Contagem negativa é rejeitada sem gravar", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.UpdateLeadsForDate(context.Background(), "2025-03-01", -1, nil)

		assert.ErrorIs(t, err, ErrInvalidLeadCount)
	})

	t.Run("Data malformada é rejeitada sem gravar", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.UpdateLeadsForDate(context.Background(), "01/03/2025", 3, nil)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestGetMetricsForDate(t *testing.T) {
	t.Run("Dia sem registro retorna exists falso", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByDate(gomock.Any(), date("2025-02-01")).Return(nil, nil)

		result, err := service.GetMetricsForDate(context.Background(), "2025-02-01")

		require.NoError(t, err)
		assert.False(t, result.Exists)
		assert.Equal(t, "2025-02-01", result.Date)
		assert.Zero(t, result.Sends)
	})
}

func TestGetRecentEntries(t *testing.T) {
	service, repo := newTestService(t)
	updated := fixedNow.Add(-time.Hour)

	repo.EXPECT().ListRecent(gomock.Any(), date("2025-03-05")).Return([]*domain.DailyMetric{
		{Date: date("2025-03-12"), EmailsSent: 800, LeadsGenerated: 4, ETLRatio: float(0.005), LeadsUpdatedAt: &updated},
		{Date: date("2025-03-11"), EmailsSent: 700},
	}, nil)

	entries, err := service.GetRecentEntries(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-03-12", entries[0].Date)
	assert.Equal(t, 0.005, entries[0].ETLRatio)
	assert.Equal(t, &updated, entries[0].UpdatedAt)
	assert.Equal(t, float64(0), entries[1].ETLRatio)
	assert.Nil(t, entries[1].UpdatedAt)
}
