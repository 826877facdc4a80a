package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
)

const syncHistoryTable = "sync_history"

//go:generate mockgen -source=sync_history.go -destination=mocks/sync_history_mock.go -package=mocks
type SyncHistoryRepository interface {
	Start(ctx context.Context, syncType domain.SyncType) (int64, error)
	Complete(ctx context.Context, id int64, status domain.SyncStatus, recordsProcessed int, errorMessage *string) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncHistory, error)
}

type syncHistoryRepository struct {
	conn *postgres.Connection
}

func NewSyncHistoryRepository(conn *postgres.Connection) SyncHistoryRepository {
	return &syncHistoryRepository{
		conn: conn,
	}
}

func (r *syncHistoryRepository) Start(ctx context.Context, syncType domain.SyncType) (int64, error) {
	query, args, err := squirrel.
		Insert(syncHistoryTable).
		Columns("sync_type", "status").
		Values(syncType, domain.SyncStatusRunning).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(&id)
	})

	return id, err
}

func (r *syncHistoryRepository) Complete(
	ctx context.Context,
	id int64,
	status domain.SyncStatus,
	recordsProcessed int,
	errorMessage *string,
) error {
	query, args, err := squirrel.
		Update(syncHistoryTable).
		Set("status", status).
		Set("records_processed", recordsProcessed).
		Set("error_message", errorMessage).
		Set("completed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, query, args...)
	return err
}

func (r *syncHistoryRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncHistory, error) {
	query, args, err := squirrel.
		Select("id", "sync_type", "started_at", "completed_at", "status", "records_processed", "error_message").
		From(syncHistoryTable).
		OrderBy("started_at DESC").
		Limit(limit).
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

	history := make([]*domain.SyncHistory, 0)
	for rows.Next() {
		entry := &domain.SyncHistory{}
		if err := rows.Scan(
			&entry.ID,
			&entry.SyncType,
			&entry.StartedAt,
			&entry.CompletedAt,
			&entry.Status,
			&entry.RecordsProcessed,
			&entry.ErrorMessage,
		); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	return history, rows.Err()
}
