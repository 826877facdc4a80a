package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

const (
	trendDays         = 30
	yearDays          = 365
	defaultRecentDays = 7
)

type Service struct {
	metricRepo repository.DailyMetricRepository
	location   *time.Location
	now        func() time.Time
}

func NewService(cfg *config.Config, metricRepo repository.DailyMetricRepository) MetricsService {
	location := cfg.App.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		metricRepo: metricRepo,
		location:   location,
		now:        time.Now,
	}
}

// periodFilters monta as janelas do dashboard a partir do dia corrente
func periodFilters(today time.Time) map[domain.Period]domain.DateFilter {
	yesterday := today.AddDate(0, 0, -1)
	weekStart := utils.StartOfWeek(today)
	monthStart := utils.StartOfMonth(today)
	yearStart := utils.DaysAgo(today, yearDays)

	return map[domain.Period]domain.DateFilter{
		domain.PeriodDay:       domain.NewDateFilter(&today, &today),
		domain.PeriodYesterday: domain.NewDateFilter(&yesterday, &yesterday),
		domain.PeriodWeek:      domain.NewDateFilter(&weekStart, nil),
		domain.PeriodMonth:     domain.NewDateFilter(&monthStart, nil),
		domain.PeriodYear:      domain.NewDateFilter(&yearStart, nil),
		domain.PeriodAllTime:   domain.NewDateFilter(nil, nil),
	}
}

func (s *Service) GetMetricsForAllPeriods(ctx context.Context) (*domain.DashboardMetrics, error) {
	today := s.today()
	filters := periodFilters(today)

	var (
		mutex        sync.Mutex
		wg           sync.WaitGroup
		firstErr     error
		periods      = make(map[domain.Period]domain.PeriodMetrics, len(filters))
		trend        []domain.TrendPoint
		lastSyncedAt *time.Time
	)

	setErr := func(err error) {
		mutex.Lock()
		defer mutex.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for period, filter := range filters {
		wg.Add(1)
		go func(period domain.Period, filter domain.DateFilter) {
			defer wg.Done()

			totals, err := s.metricRepo.Totals(ctx, filter)
			if err != nil {
				setErr(errors.Wrapf(err, "erro ao calcular o período %s", period))
				return
			}

			mutex.Lock()
			periods[period] = domain.NewPeriodMetrics(totals.Sends, totals.Leads)
			mutex.Unlock()
		}(period, filter)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()

		trendStart := utils.DaysAgo(today, trendDays)
		points, err := s.trend(ctx, domain.NewDateFilter(&trendStart, nil))
		if err != nil {
			setErr(err)
			return
		}
		trend = points
	}()

	go func() {
		defer wg.Done()

		synced, err := s.metricRepo.GetLastSyncedAt(ctx)
		if err != nil {
			setErr(errors.Wrap(err, "erro ao buscar a última sincronização"))
			return
		}
		lastSyncedAt = synced
	}()

	wg.Wait()

	if firstErr != nil {
		logrus.WithError(firstErr).Error("Erro ao calcular as métricas do dashboard")
		return nil, firstErr
	}

	return &domain.DashboardMetrics{
		Periods:      periods,
		Trend:        trend,
		LastSyncedAt: lastSyncedAt,
		Today: domain.TodayMetrics{
			Date:          utils.FormatDate(today),
			PeriodMetrics: periods[domain.PeriodDay],
		},
	}, nil
}

func (s *Service) GetMetricsForRange(ctx context.Context, startDate, endDate string) (*domain.RangeMetrics, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}

	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}

	if start.After(*end) {
		return nil, ErrInvalidRange
	}

	filter := domain.NewDateFilter(start, end)

	var (
		totals              *domain.MetricTotals
		trend               []domain.TrendPoint
		totalsErr, trendErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		totals, totalsErr = s.metricRepo.Totals(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		trend, trendErr = s.trend(ctx, filter)
	}()

	wg.Wait()

	if totalsErr != nil {
		return nil, errors.Wrap(totalsErr, "erro ao somar o intervalo")
	}
	if trendErr != nil {
		return nil, trendErr
	}

	return &domain.RangeMetrics{
		StartDate:     startDate,
		EndDate:       endDate,
		Days:          totals.Days,
		PeriodMetrics: domain.NewPeriodMetrics(totals.Sends, totals.Leads),
		Trend:         trend,
	}, nil
}

func (s *Service) GetMetricsForDate(ctx context.Context, date string) (*domain.DateMetrics, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	metric, err := s.metricRepo.GetByDate(ctx, *day)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar métricas do dia %s", date)
	}

	if metric == nil {
		return &domain.DateMetrics{Date: date}, nil
	}

	return &domain.DateMetrics{
		Date:          date,
		PeriodMetrics: domain.NewPeriodMetrics(metric.EmailsSent, metric.LeadsGenerated),
		Notes:         metric.Notes,
		Exists:        true,
	}, nil
}

func (s *Service) UpdateLeadsForDate(ctx context.Context, date string, leadCount int64, notes *string) (*domain.LeadUpdateResult, error) {
	if leadCount < 0 {
		return nil, ErrInvalidLeadCount
	}

	day := s.today()
	if date != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return nil, err
		}
		day = *parsed
	}

	var previous int64
	metric, _, err := s.metricRepo.Upsert(ctx, day, func(metric *domain.DailyMetric) error {
		previous = metric.LeadsGenerated
		metric.ApplyLeads(leadCount, notes, s.now())
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao gravar leads do dia %s", utils.FormatDate(day))
	}

	result := &domain.LeadUpdateResult{
		Success:           true,
		Date:              utils.FormatDate(day),
		PreviousLeadCount: previous,
		NewLeadCount:      metric.LeadsGenerated,
	}
	if metric.ETLRatio != nil {
		result.NewETLRatio = *metric.ETLRatio
	}

	logrus.WithFields(logrus.Fields{
		"date":     result.Date,
		"previous": previous,
		"leads":    leadCount,
	}).Info("Leads do dia atualizados")

	return result, nil
}

func (s *Service) GetRecentEntries(ctx context.Context, days int) ([]*domain.RecentEntry, error) {
	if days <= 0 {
		days = defaultRecentDays
	}

	metrics, err := s.metricRepo.ListRecent(ctx, utils.DaysAgo(s.today(), days))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar entradas recentes")
	}

	entries := make([]*domain.RecentEntry, 0, len(metrics))
	for _, metric := range metrics {
		entries = append(entries, &domain.RecentEntry{
			Date:      utils.FormatDate(metric.Date),
			Sends:     metric.EmailsSent,
			Leads:     metric.LeadsGenerated,
			ETLRatio:  valueOrZero(metric.ETLRatio),
			Notes:     metric.Notes,
			UpdatedAt: metric.LeadsUpdatedAt,
		})
	}

	return entries, nil
}

func (s *Service) trend(ctx context.Context, filter domain.DateFilter) ([]domain.TrendPoint, error) {
	metrics, err := s.metricRepo.ListByDateRange(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a tendência diária")
	}

	points := make([]domain.TrendPoint, 0, len(metrics))
	for _, metric := range metrics {
		points = append(points, domain.TrendPoint{
			Date:     utils.FormatDate(metric.Date),
			Sends:    metric.EmailsSent,
			Leads:    metric.LeadsGenerated,
			ETLRatio: valueOrZero(metric.ETLRatio),
		})
	}

	return points, nil
}

func (s *Service) today() time.Time {
	return utils.DateOnly(s.now().In(s.location))
}

func parseDate(value string) (*time.Time, error) {
	if !utils.IsValidDate(value) {
		return nil, ErrInvalidDate
	}
	return utils.ParseDate(value)
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
