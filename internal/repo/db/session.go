package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/bloggers-auth/internal/config"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateSession(ctx context.Context, s *md.Session) error {
	const op = "sessions.CreateSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		createSession,
		s.DeviceID,
		s.UserID,
		s.IssuedAt,
		s.ExpiresAt,
		s.IP,
		s.DeviceLabel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create session", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, deviceID string, userID uuid.UUID) (*md.Session, error) {
	const op = "sessions.GetSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, getSession, deviceID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get session", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) GetSessionByDeviceID(ctx context.Context, deviceID string) (*md.Session, error) {
	const op = "sessions.GetSessionByDeviceID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, getSessionByDeviceID, deviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get session by device", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListSessions(ctx context.Context, userID uuid.UUID) ([]md.Session, error) {
	const op = "sessions.ListSessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Session, 0, 4)
	if err := r.conn.SelectContext(ctx, &res, listSessions, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list sessions", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// ReplaceSession moves the session to a new issue time only if it still holds
// prevIssuedAt. A concurrent rotation makes it return repo.ErrConflict.
func (r *Repository) ReplaceSession(ctx context.Context, s *md.Session, prevIssuedAt time.Time) error {
	const op = "sessions.ReplaceSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		replaceSession,
		s.IssuedAt,
		s.ExpiresAt,
		s.IP,
		s.DeviceLabel,
		s.DeviceID,
		s.UserID,
		prevIssuedAt,
	)
	return r.expectOne(op, span, res, err, repo.ErrConflict)
}

func (r *Repository) DeleteSession(ctx context.Context, deviceID string, userID uuid.UUID) error {
	const op = "sessions.DeleteSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteSession, deviceID, userID)
	return r.expectOne(op, span, res, err, repo.ErrNotFound)
}

func (r *Repository) DeleteSessionByDeviceID(ctx context.Context, deviceID string) error {
	const op = "sessions.DeleteSessionByDeviceID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteSessionByDeviceID, deviceID)
	return r.expectOne(op, span, res, err, repo.ErrNotFound)
}

func (r *Repository) DeleteOtherSessions(ctx context.Context, userID uuid.UUID, keepDeviceID string) error {
	const op = "sessions.DeleteOtherSessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, deleteOtherSessions, userID, keepDeviceID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete other sessions", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}
