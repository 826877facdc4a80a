package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

const dailyMetricsTable = "daily_metrics"

var dailyMetricColumns = []string{
	"date",
	"emails_sent",
	"leads_generated",
	"etl_ratio",
	"sends_per_lead",
	"sends_last_synced_at",
	"leads_updated_at",
	"notes",
	"created_at",
	"updated_at",
}

// ApplyFunc altera a linha do dia dentro da transação de upsert
type ApplyFunc func(metric *domain.DailyMetric) error

//go:generate mockgen -source=daily_metric.go -destination=mocks/daily_metric_mock.go -package=mocks
type DailyMetricRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyMetric, error)
	Totals(ctx context.Context, filter domain.DateFilter) (*domain.MetricTotals, error)
	ListByDateRange(ctx context.Context, filter domain.DateFilter) ([]*domain.DailyMetric, error)
	ListRecent(ctx context.Context, since time.Time) ([]*domain.DailyMetric, error)
	GetLastSyncedAt(ctx context.Context) (*time.Time, error)
	Upsert(ctx context.Context, date time.Time, apply ApplyFunc) (*domain.DailyMetric, bool, error)
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func (r *dailyMetricRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"date": utils.FormatDate(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var metric *domain.DailyMetric
	err = r.conn.WithRetry(ctx, func() error {
		var scanErr error
		metric, scanErr = scanDailyMetric(r.conn.QueryRow(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return metric, nil
}

// Totals soma envios e leads dos dias dentro do filtro
func (r *dailyMetricRepository) Totals(ctx context.Context, filter domain.DateFilter) (*domain.MetricTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(emails_sent), 0)",
			"COALESCE(SUM(leads_generated), 0)",
			"COUNT(*)",
		).
		From(dailyMetricsTable).
		Where(dateFilterClause("date", filter)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	totals := &domain.MetricTotals{}
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(&totals.Sends, &totals.Leads, &totals.Days)
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao somar métricas diárias: %w", err)
	}

	return totals, nil
}

func (r *dailyMetricRepository) ListByDateRange(ctx context.Context, filter domain.DateFilter) ([]*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		Where(dateFilterClause("date", filter)).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.list(ctx, query, args)
}

// ListRecent lista os dias a partir de since, do mais recente para o mais antigo
func (r *dailyMetricRepository) ListRecent(ctx context.Context, since time.Time) ([]*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		Where(squirrel.GtOrEq{"date": utils.FormatDate(since)}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.list(ctx, query, args)
}

func (r *dailyMetricRepository) list(ctx context.Context, query string, args []interface{}) ([]*domain.DailyMetric, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric, err := scanDailyMetric(rows)
		if err != nil {
			return nil, err
		}

		metrics = append(metrics, metric)
	}

	return metrics, rows.Err()
}

func (r *dailyMetricRepository) GetLastSyncedAt(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(sends_last_synced_at)").
		From(dailyMetricsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var lastSyncedAt sql.NullTime
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(&lastSyncedAt)
	})
	if err != nil {
		return nil, err
	}

	if !lastSyncedAt.Valid {
		return nil, nil
	}

	return &lastSyncedAt.Time, nil
}

// Upsert garante a linha do dia e aplica a alteração sob bloqueio de linha.
// Retorna true quando a linha foi criada por esta chamada.
func (r *dailyMetricRepository) Upsert(ctx context.Context, date time.Time, apply ApplyFunc) (*domain.DailyMetric, bool, error) {
	var (
		metric   *domain.DailyMetric
		inserted bool
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		metric, inserted, err = upsertDailyMetricTx(ctx, tx, date, apply)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return metric, inserted, nil
}

func upsertDailyMetricTx(ctx context.Context, tx *sql.Tx, date time.Time, apply ApplyFunc) (*domain.DailyMetric, bool, error) {
	day := utils.FormatDate(date)

	result, err := tx.ExecContext(ctx,
		`INSERT INTO daily_metrics (date) VALUES ($1) ON CONFLICT (date) DO NOTHING`,
		day,
	)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao criar métrica do dia %s: %w", day, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	inserted := affected == 1

	selectSQL, selectArgs, err := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"date": day}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	metric, err := scanDailyMetric(tx.QueryRowContext(ctx, selectSQL, selectArgs...))
	if err != nil {
		return nil, false, fmt.Errorf("erro ao bloquear métrica do dia %s: %w", day, err)
	}

	if err := apply(metric); err != nil {
		return nil, false, err
	}

	updateSQL, updateArgs, err := squirrel.
		Update(dailyMetricsTable).
		Set("emails_sent", metric.EmailsSent).
		Set("leads_generated", metric.LeadsGenerated).
		Set("etl_ratio", metric.ETLRatio).
		Set("sends_per_lead", metric.SendsPerLead).
		Set("sends_last_synced_at", metric.SendsLastSyncedAt).
		Set("leads_updated_at", metric.LeadsUpdatedAt).
		Set("notes", metric.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": day}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	if err := tx.QueryRowContext(ctx, updateSQL, updateArgs...).Scan(&metric.UpdatedAt); err != nil {
		return nil, false, fmt.Errorf("erro ao atualizar métrica do dia %s: %w", day, err)
	}

	return metric, inserted, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDailyMetric(row rowScanner) (*domain.DailyMetric, error) {
	metric := &domain.DailyMetric{}

	if err := row.Scan(
		&metric.Date,
		&metric.EmailsSent,
		&metric.LeadsGenerated,
		&metric.ETLRatio,
		&metric.SendsPerLead,
		&metric.SendsLastSyncedAt,
		&metric.LeadsUpdatedAt,
		&metric.Notes,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	); err != nil {
		return nil, err
	}

	metric.Date = utils.DateOnly(metric.Date)

	return metric, nil
}

// dateFilterClause monta o filtro inclusivo de datas; limites nulos são ignorados
func dateFilterClause(column string, filter domain.DateFilter) squirrel.And {
	clause := squirrel.And{}

	if filter.StartDate != nil {
		clause = append(clause, squirrel.GtOrEq{column: utils.FormatDate(*filter.StartDate)})
	}

	if filter.EndDate != nil {
		clause = append(clause, squirrel.LtOrEq{column: utils.FormatDate(*filter.EndDate)})
	}

	return clause
}
