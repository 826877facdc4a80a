package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly/instantlyclient"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/api"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/internal/scheduler"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/etl-dashboard-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetEnvironment(cfg.App.Env)

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco")
	}

	metricRepo := repository.NewDailyMetricRepository(pgConn)
	historyRepo := repository.NewSyncHistoryRepository(pgConn)
	industryRepo := repository.NewIndustryRepository(pgConn)
	industryLeadRepo := repository.NewIndustryLeadRepository(pgConn)
	sessionRepo := repository.NewAdminSessionRepository(pgConn)

	seed := migration.SeedIndustries(ctx, industryRepo)
	logrus.WithFields(logrus.Fields{
		"inserted": seed.Inserted,
		"updated":  seed.Updated,
	}).Info("Indústrias carregadas")

	instantlyClient := instantlyclient.NewClient(cfg)
	instantlyIntegrator := instantly.New(instantlyClient)

	authenticator := authenticating.NewService(sessionRepo, cfg)
	metricsService := insighting.NewService(cfg, metricRepo)
	rankingService := ranking.NewIndustryRankingService(industryRepo, industryLeadRepo, metricRepo)

	sendsSyncService := scheduler.NewSendsSyncService(metricRepo, historyRepo, instantlyIntegrator, cfg)
	if err := sendsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de envios")
	} else {
		logrus.Info("Agendador de sincronização de envios iniciado com sucesso")
	}
	defer sendsSyncService.Stop()

	sessionCleanupService := scheduler.NewSessionCleanupService(authenticator, cfg.Auth.SessionCleanupCron, cfg.App.Location)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza agendada de sessões")
	}
	defer sessionCleanupService.Stop()

	server, err := api.New(
		cfg,
		metricsService,
		rankingService,
		authenticator,
		sendsSyncService,
		instantlyIntegrator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
