package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly"
	instantlydomain "github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly/domain"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/telemetry"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

const (
	recentHistoryLimit = 10
	noBackfillData     = "No data"
)

// SendsSyncConfig representa a configuração da sincronização de envios com o Instantly
type SendsSyncConfig struct {
	IntervalMinutes   int
	BackfillStartDate string
	BackfillEnabled   bool
	SyncEnabled       bool
}

// SendsSyncService mantém daily_metrics alinhada ao Instantly.
// O backfill histórico roda uma única vez por instância; o dia atual é sincronizado a cada intervalo.
type SendsSyncService struct {
	scheduler   *gocron.Scheduler
	config      SendsSyncConfig
	metricRepo  repository.DailyMetricRepository
	historyRepo repository.SyncHistoryRepository
	instantly   instantly.Integrator
	location    *time.Location
	now         func() time.Time

	backfillOnce sync.Once

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      *domain.SyncResult
	backfillStartedAt   time.Time
	backfillCompletedAt time.Time
	lastBackfillResult  *domain.BackfillResult
}

func NewSendsSyncService(
	metricRepo repository.DailyMetricRepository,
	historyRepo repository.SyncHistoryRepository,
	instantlyService instantly.Integrator,
	appConfig *config.Config,
) *SendsSyncService {
	syncConfig := SendsSyncConfig{
		IntervalMinutes:   appConfig.SendsSync.IntervalMinutes,
		BackfillStartDate: appConfig.SendsSync.BackfillStartDate,
		BackfillEnabled:   appConfig.SendsSync.BackfillEnabled,
		SyncEnabled:       appConfig.SendsSync.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	scheduler := gocron.NewScheduler(location)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"interval_minutes":    syncConfig.IntervalMinutes,
		"backfill_start_date": syncConfig.BackfillStartDate,
		"backfill_enabled":    syncConfig.BackfillEnabled,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração da sincronização de envios carregada")

	return &SendsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		metricRepo:  metricRepo,
		historyRepo: historyRepo,
		instantly:   instantlyService,
		location:    location,
		now:         time.Now,
	}
}

// Start dispara o backfill (uma vez) e agenda a sincronização do dia atual,
// que também roda imediatamente.
func (s *SendsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Warn("INSTANTLY_API_KEY não configurada, sincronização de envios desabilitada")
		return nil
	}

	if s.config.BackfillEnabled {
		s.backfillOnce.Do(func() {
			go s.RunFullBackfill(ctx)
		})
	}

	_, err := s.scheduler.
		Every(s.config.IntervalMinutes).Minutes().
		StartImmediately().
		Do(s.runLiveSync, ctx)
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de envios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).Info("Sincronização de envios iniciada")

	return nil
}

// IsEnabled indica se há chave do Instantly para sincronizar envios
func (s *SendsSyncService) IsEnabled() bool {
	return s.config.SyncEnabled
}

func (s *SendsSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de sincronização de envios")
		s.scheduler.Stop()
	}
}

// runLiveSync é o job agendado; execuções sobrepostas são descartadas
func (s *SendsSyncService) runLiveSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de envios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	s.SyncToday(ctx)
}

// SyncToday sincroniza os envios do dia atual
func (s *SendsSyncService) SyncToday(ctx context.Context) domain.SyncResult {
	startedAt := s.now()

	s.syncMutex.Lock()
	s.lastSyncStartedAt = startedAt
	s.syncMutex.Unlock()

	result := s.SyncSendsForDate(ctx, s.today(), domain.SyncTypeLive)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncResult = &result
	s.syncMutex.Unlock()

	return result
}

// SyncSendsForDate busca os envios do dia no Instantly e sobrescreve o valor gravado
func (s *SendsSyncService) SyncSendsForDate(ctx context.Context, date time.Time, syncType domain.SyncType) domain.SyncResult {
	day := utils.FormatDate(date)
	logger := logrus.WithFields(logrus.Fields{
		"date":      day,
		"sync_type": syncType,
		"run_id":    uuid.NewString(),
	})
	logger.Info("Sincronizando envios do dia")

	historyID := s.startHistory(ctx, syncType)

	sends := s.instantly.GetTotalSendsForDate(ctx, day)

	syncedAt := s.now()
	_, _, err := s.metricRepo.Upsert(ctx, date, func(metric *domain.DailyMetric) error {
		metric.ApplyLiveSends(sends, syncedAt)
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar envios do dia")
		s.completeHistory(ctx, historyID, syncType, 0, err)
		return domain.SyncResult{Success: false, Date: day, Error: err.Error()}
	}

	logger.WithField("sends", sends).Info("Envios do dia sincronizados")
	s.completeHistory(ctx, historyID, syncType, 1, nil)

	return domain.SyncResult{Success: true, Date: day, Sends: sends}
}

// RunFullBackfill busca todo o histórico desde a data inicial e preenche os dias nunca sincronizados
func (s *SendsSyncService) RunFullBackfill(ctx context.Context) domain.BackfillResult {
	startedAt := s.now()
	s.syncMutex.Lock()
	s.backfillStartedAt = startedAt
	s.syncMutex.Unlock()

	result := s.runFullBackfill(ctx)

	s.syncMutex.Lock()
	s.backfillCompletedAt = s.now()
	s.lastBackfillResult = &result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"success":  result.Success,
		"inserted": result.Inserted,
		"updated":  result.Updated,
		"duration": s.now().Sub(startedAt).String(),
	}).Info("Backfill histórico finalizado")

	return result
}

func (s *SendsSyncService) runFullBackfill(ctx context.Context) domain.BackfillResult {
	startDate := s.config.BackfillStartDate
	endDate := utils.FormatDate(s.today())

	logrus.WithFields(logrus.Fields{
		"start_date": startDate,
		"end_date":   endDate,
	}).Info("Iniciando backfill histórico de envios")

	historyID := s.startHistory(ctx, domain.SyncTypeBackfill)

	days, err := s.instantly.GetDailyAnalytics(ctx, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar histórico diário no Instantly")
		s.completeHistory(ctx, historyID, domain.SyncTypeBackfill, 0, err)
		return domain.BackfillResult{Success: false, Error: err.Error()}
	}

	if len(days) == 0 {
		logrus.Info("Nenhum histórico disponível no Instantly")
		s.completeHistory(ctx, historyID, domain.SyncTypeBackfill, 0, errors.New(noBackfillData))
		return domain.BackfillResult{Success: false, Error: noBackfillData}
	}

	inserted, updated := s.BackfillHistoricalSends(ctx, days)
	s.completeHistory(ctx, historyID, domain.SyncTypeBackfill, inserted+updated, nil)

	return domain.BackfillResult{Success: true, Inserted: inserted, Updated: updated}
}

// BackfillHistoricalSends grava os envios de cada dia sem sobrescrever dias já sincronizados.
// Falhas de um dia são registradas e não interrompem os demais.
func (s *SendsSyncService) BackfillHistoricalSends(ctx context.Context, days []instantlydomain.DailyAnalytics) (int, int) {
	logrus.WithField("days", len(days)).Info("Preenchendo histórico de envios")

	var inserted, updated int
	for _, day := range days {
		if day.Date == "" || day.Sent == nil {
			continue
		}

		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).Warn("Backfill interrompido")
			break
		}

		date, err := time.Parse(utils.DateLayout, day.Date[:min(len(day.Date), len(utils.DateLayout))])
		if err != nil {
			logrus.WithField("date", day.Date).WithError(err).Error("Data inválida no histórico do Instantly")
			continue
		}

		sent := *day.Sent
		syncedAt := s.now()
		_, created, err := s.metricRepo.Upsert(ctx, date, func(metric *domain.DailyMetric) error {
			metric.ApplyBackfillSends(sent, syncedAt)
			return nil
		})
		if err != nil {
			logrus.WithField("date", day.Date).WithError(err).Error("Erro ao preencher envios do dia")
			continue
		}

		if created {
			inserted++
		} else {
			updated++
		}
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"updated":  updated,
	}).Info("Histórico de envios preenchido")

	return inserted, updated
}

// GetStatus retorna o status atual do agendador e as últimas execuções registradas
func (s *SendsSyncService) GetStatus(ctx context.Context) map[string]any {
	s.syncMutex.Lock()
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_minutes":  s.config.IntervalMinutes,
		"backfill_enabled":       s.config.BackfillEnabled,
		"backfill_start_date":    s.config.BackfillStartDate,
		"backfill_started_at":    nullableTime(s.backfillStartedAt),
		"backfill_completed_at":  nullableTime(s.backfillCompletedAt),
		"last_backfill_result":   s.lastBackfillResult,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   nullableTime(s.lastSyncStartedAt),
		"last_sync_completed_at": nullableTime(s.lastSyncCompletedAt),
		"last_sync_result":       s.lastSyncResult,
	}
	s.syncMutex.Unlock()

	history, err := s.historyRepo.ListRecent(ctx, recentHistoryLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar histórico de sincronizações")
		history = []*domain.SyncHistory{}
	}
	status["recent_history"] = history

	return status
}

func (s *SendsSyncService) today() time.Time {
	return utils.DateOnly(s.now().In(s.location))
}

func (s *SendsSyncService) startHistory(ctx context.Context, syncType domain.SyncType) int64 {
	id, err := s.historyRepo.Start(ctx, syncType)
	if err != nil {
		logrus.WithField("sync_type", syncType).WithError(err).Warn("Erro ao registrar início da sincronização")
		return 0
	}
	return id
}

func (s *SendsSyncService) completeHistory(ctx context.Context, id int64, syncType domain.SyncType, records int, syncErr error) {
	status := domain.SyncStatusSuccess
	var message *string
	if syncErr != nil {
		status = domain.SyncStatusFailed
		msg := syncErr.Error()
		message = &msg
	}

	telemetry.SyncRuns.WithLabelValues(string(syncType), string(status)).Inc()

	if id == 0 {
		return
	}

	if err := s.historyRepo.Complete(ctx, id, status, records, message); err != nil {
		logrus.WithField("sync_type", syncType).WithError(err).Warn("Erro ao registrar fim da sincronização")
	}
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
