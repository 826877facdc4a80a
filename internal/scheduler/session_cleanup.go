package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SessionCleaner remove sessões administrativas expiradas
type SessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// SessionCleanupService agenda a limpeza periódica de admin_sessions
type SessionCleanupService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	cleaner      SessionCleaner
}

func NewSessionCleanupService(cleaner SessionCleaner, cronSchedule string, location *time.Location) *SessionCleanupService {
	if location == nil {
		location = time.UTC
	}

	scheduler := gocron.NewScheduler(location)
	scheduler.SingletonModeAll()

	return &SessionCleanupService{
		scheduler:    scheduler,
		cronSchedule: cronSchedule,
		cleaner:      cleaner,
	}
}

func (s *SessionCleanupService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cronSchedule).Info("Iniciando limpeza agendada de sessões expiradas")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.cleanup, ctx)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando limpeza agendada de sessões")
		s.scheduler.Stop()
	}
}

func (s *SessionCleanupService) cleanup(ctx context.Context) {
	removed, err := s.cleaner.CleanupExpiredSessions(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões expiradas")
		return
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Sessões expiradas removidas")
	}
}
