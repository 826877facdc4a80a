package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
)

const adminSessionsTable = "admin_sessions"

//go:generate mockgen -source=admin_session.go -destination=mocks/admin_session_mock.go -package=mocks
type AdminSessionRepository interface {
	Create(ctx context.Context, session *domain.AdminSession) (*domain.AdminSession, error)
	GetActiveByToken(ctx context.Context, token string, now time.Time) (*domain.AdminSession, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type adminSessionRepository struct {
	conn *postgres.Connection
}

func NewAdminSessionRepository(conn *postgres.Connection) AdminSessionRepository {
	return &adminSessionRepository{
		conn: conn,
	}
}

func (r *adminSessionRepository) Create(ctx context.Context, session *domain.AdminSession) (*domain.AdminSession, error) {
	query, args, err := squirrel.
		Insert(adminSessionsTable).
		Columns("token", "expires_at").
		Values(session.Token, session.ExpiresAt).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(&session.ID, &session.CreatedAt)
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrDuplicateSessionToken
		}
		return nil, err
	}

	return session, nil
}

// GetActiveByToken retorna nil quando o token não existe ou já expirou
func (r *adminSessionRepository) GetActiveByToken(ctx context.Context, token string, now time.Time) (*domain.AdminSession, error) {
	query, args, err := squirrel.
		Select("id", "token", "expires_at", "created_at").
		From(adminSessionsTable).
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Gt{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	session := &domain.AdminSession{}
	err = r.conn.WithRetry(ctx, func() error {
		return r.conn.QueryRow(ctx, query, args...).Scan(
			&session.ID,
			&session.Token,
			&session.ExpiresAt,
			&session.CreatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return session, nil
}

func (r *adminSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query, args, err := squirrel.
		Delete(adminSessionsTable).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, query, args...)
	return err
}

func (r *adminSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(adminSessionsTable).
		Where(squirrel.Lt{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
