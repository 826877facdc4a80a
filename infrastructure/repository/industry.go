package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
)

const industriesTable = "industries"

//go:generate mockgen -source=industry.go -destination=mocks/industry_mock.go -package=mocks
type IndustryRepository interface {
	List(ctx context.Context) ([]*domain.Industry, error)
	GetByID(ctx context.Context, id int64) (*domain.Industry, error)
	UpsertByName(ctx context.Context, industry *domain.Industry) (bool, error)
}

type industryRepository struct {
	conn *postgres.Connection
}

func NewIndustryRepository(conn *postgres.Connection) IndustryRepository {
	return &industryRepository{
		conn: conn,
	}
}

// List retorna as indústrias da maior para a menor participação nos envios
func (r *industryRepository) List(ctx context.Context) ([]*domain.Industry, error) {
	query, args, err := squirrel.
		Select("id", "name", "source", "send_percentage", "COALESCE(keywords, '')").
		From(industriesTable).
		OrderBy("send_percentage DESC").
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

	industries := make([]*domain.Industry, 0)
	for rows.Next() {
		industry := &domain.Industry{}
		if err := rows.Scan(
			&industry.ID,
			&industry.Name,
			&industry.Source,
			&industry.SendPercentage,
			&industry.Keywords,
		); err != nil {
			return nil, err
		}

		industries = append(industries, industry)
	}

	return industries, rows.Err()
}

func (r *industryRepository) GetByID(ctx context.Context, id int64) (*domain.Industry, error) {
	query, args, err := squirrel.
		Select("id", "name", "source", "send_percentage", "COALESCE(keywords, '')").
		From(industriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	industry := &domain.Industry{}
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(
			&industry.ID,
			&industry.Name,
			&industry.Source,
			&industry.SendPercentage,
			&industry.Keywords,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return industry, nil
}

// UpsertByName grava a indústria pelo nome e informa se a linha foi criada
func (r *industryRepository) UpsertByName(ctx context.Context, industry *domain.Industry) (bool, error) {
	query, args, err := squirrel.
		Insert(industriesTable).
		Columns("name", "source", "send_percentage", "keywords").
		Values(industry.Name, industry.Source, industry.SendPercentage, industry.Keywords).
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				source = EXCLUDED.source,
				send_percentage = EXCLUDED.send_percentage,
				keywords = EXCLUDED.keywords
			RETURNING id, (xmax = 0)
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var inserted bool
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(&industry.ID, &inserted)
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}
