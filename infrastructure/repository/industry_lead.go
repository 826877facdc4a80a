package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

const industryLeadsTable = "industry_leads"

//go:generate mockgen -source=industry_lead.go -destination=mocks/industry_lead_mock.go -package=mocks
type IndustryLeadRepository interface {
	SumByIndustryAndSource(ctx context.Context, filter domain.IndustryLeadFilter) ([]*domain.IndustryLeadAggregate, error)
	StatsBySource(ctx context.Context, industryID int64, filter domain.DateFilter) ([]*domain.IndustrySourceStats, error)
	Save(ctx context.Context, lead *domain.IndustryLead, now time.Time) (*domain.IndustryLead, error)
}

type industryLeadRepository struct {
	conn *postgres.Connection
}

func NewIndustryLeadRepository(conn *postgres.Connection) IndustryLeadRepository {
	return &industryLeadRepository{
		conn: conn,
	}
}

// SumByIndustryAndSource soma os leads de cada par (indústria, origem).
// Indústrias sem leads no filtro aparecem uma vez, com origem nula e total 0.
func (r *industryLeadRepository) SumByIndustryAndSource(
	ctx context.Context,
	filter domain.IndustryLeadFilter,
) ([]*domain.IndustryLeadAggregate, error) {
	joinClause := dateFilterClause("il.date", filter.DateFilter)
	if filter.Source != "" {
		joinClause = append(joinClause, squirrel.Eq{"il.source": filter.Source})
	}

	joinSQL, joinArgs, err := joinClause.ToSql()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(
			"i.id",
			"i.name",
			"i.send_percentage",
			"il.source",
			"COALESCE(SUM(il.leads_count), 0)",
		).
		From("industries i").
		LeftJoin("industry_leads il ON i.id = il.industry_id AND "+joinSQL, joinArgs...).
		GroupBy("i.id", "i.name", "i.send_percentage", "il.source").
		OrderBy("i.send_percentage DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]*domain.IndustryLeadAggregate, 0)
	for rows.Next() {
		aggregate := &domain.IndustryLeadAggregate{}
		if err := rows.Scan(
			&aggregate.IndustryID,
			&aggregate.Name,
			&aggregate.SendPercentage,
			&aggregate.Source,
			&aggregate.TotalLeads,
		); err != nil {
			return nil, err
		}

		aggregates = append(aggregates, aggregate)
	}

	return aggregates, rows.Err()
}

func (r *industryLeadRepository) StatsBySource(
	ctx context.Context,
	industryID int64,
	filter domain.DateFilter,
) ([]*domain.IndustrySourceStats, error) {
	query, args, err := squirrel.
		Select(
			"source",
			"COALESCE(SUM(leads_count), 0)",
			"COUNT(DISTINCT date)",
		).
		From(industryLeadsTable).
		Where(squirrel.Eq{"industry_id": industryID}).
		Where(dateFilterClause("date", filter)).
		GroupBy("source").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.IndustrySourceStats, 0)
	for rows.Next() {
		stat := &domain.IndustrySourceStats{}
		if err := rows.Scan(&stat.Source, &stat.TotalLeads, &stat.DaysWithLeads); err != nil {
			return nil, err
		}

		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

// Save grava os leads da indústria e recalcula o total de leads do dia na mesma transação
func (r *industryLeadRepository) Save(ctx context.Context, lead *domain.IndustryLead, now time.Time) (*domain.IndustryLead, error) {
	day := utils.FormatDate(lead.Date)

	insertSQL, insertArgs, err := squirrel.
		Insert(industryLeadsTable).
		Columns("industry_id", "date", "source", "leads_count", "notes").
		Values(lead.IndustryID, day, lead.Source, lead.LeadsCount, lead.Notes).
		Suffix(`
			ON CONFLICT (date, industry_id, source) DO UPDATE SET
				leads_count = EXCLUDED.leads_count,
				notes = EXCLUDED.notes,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	saved := *lead
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(
			&saved.ID,
			&saved.CreatedAt,
			&saved.UpdatedAt,
		); err != nil {
			if postgres.IsForeignKeyViolation(err) {
				return ErrUnknownIndustry
			}
			return fmt.Errorf("erro ao gravar leads da indústria: %w", err)
		}

		var dayTotal int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(leads_count), 0) FROM industry_leads WHERE date = $1`,
			day,
		).Scan(&dayTotal); err != nil {
			return fmt.Errorf("erro ao somar leads do dia %s: %w", day, err)
		}

		_, _, err := upsertDailyMetricTx(ctx, tx, lead.Date, func(metric *domain.DailyMetric) error {
			metric.ApplyLeads(dayTotal, nil, now)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
