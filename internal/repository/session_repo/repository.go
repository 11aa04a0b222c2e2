package session_repo

import (
	"context"
	"errors"
	"time"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "sessions"
	colID        = "id"
	colUserID    = "user_id"
	colToken     = "token"
	colExpiresAt = "expires_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateSession - создает запись сессии.
// Одна вставка на логин, без дедупликации по пользователю
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := sq.Insert(table).
		Columns(colID, colUserID, colToken, colExpiresAt).
		Values(session.ID, session.UserID, session.Token, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetSessionByToken - точечный lookup сессии по значению refresh токена
func (r *repo) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	query := sq.Select(colID, colUserID, colToken, colExpiresAt).
		From(table).
		Where(sq.Eq{colToken: token}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &session, nil
}

// DeleteSessionsByToken - удаляет все сессии с данным токеном.
// Реализовано как set-delete, чтобы повторный logout был идемпотентен
func (r *repo) DeleteSessionsByToken(ctx context.Context, token string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colToken: token}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// DeleteExpiredSessions - чистит просроченные записи.
// Возвращает количество удаленных строк
func (r *repo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query := sq.Delete(table).
		Where(sq.Lt{colExpiresAt: now}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}
