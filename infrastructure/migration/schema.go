package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
)

// statements é idempotente: pode rodar a cada inicialização
var statements = []string{
	`CREATE TABLE IF NOT EXISTS daily_metrics (
		id SERIAL PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		emails_sent INTEGER NOT NULL DEFAULT 0,
		leads_generated INTEGER NOT NULL DEFAULT 0,
		etl_ratio DECIMAL(10,6),
		sends_per_lead DECIMAL(10,2),
		sends_last_synced_at TIMESTAMPTZ,
		leads_updated_at TIMESTAMPTZ,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_metrics_date ON daily_metrics(date DESC)`,
	`CREATE TABLE IF NOT EXISTS industries (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		source VARCHAR(50) NOT NULL DEFAULT 'apollo',
		send_percentage DECIMAL(10,4) NOT NULL DEFAULT 0,
		keywords TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS industry_leads (
		id SERIAL PRIMARY KEY,
		industry_id INTEGER NOT NULL REFERENCES industries(id),
		date DATE NOT NULL,
		source VARCHAR(50) NOT NULL DEFAULT 'apollo',
		leads_count INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (date, industry_id, source)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_industry_leads_date ON industry_leads(date)`,
	`CREATE TABLE IF NOT EXISTS admin_sessions (
		id SERIAL PRIMARY KEY,
		token VARCHAR(64) UNIQUE NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sync_history (
		id SERIAL PRIMARY KEY,
		sync_type VARCHAR(50) NOT NULL,
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ,
		status VARCHAR(20) NOT NULL DEFAULT 'running',
		records_processed INTEGER NOT NULL DEFAULT 0,
		error_message TEXT
	)`,
	`DELETE FROM admin_sessions WHERE expires_at < NOW()`,
}

// Apply cria as tabelas que ainda não existem
func Apply(ctx context.Context, conn postgres.Queryer) error {
	for i, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar o passo %d do schema: %w", i+1, err)
		}
	}

	logrus.WithField("steps", len(statements)).Info("Schema do banco de dados inicializado")
	return nil
}
