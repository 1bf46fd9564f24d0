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

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, span, userGetByIDQ, userID)
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*md.User, error) {
	const op = "users.GetUserByLogin.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, span, userGetByLoginQ, login)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, span, userGetByEmailQ, email)
}

func (r *Repository) GetUserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*md.User, error) {
	const op = "users.GetUserByLoginOrEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildLoginOrEmailQuery(ctx, loginOrEmail)
	if err != nil {
		return nil, err
	}

	return r.getUser(ctx, op, span, q, args...)
}

func (r *Repository) GetUserByCode(ctx context.Context, code string) (*md.User, error) {
	const op = "users.GetUserByCode.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, span, userGetByCodeQ, code)
}

func (r *Repository) getUser(ctx context.Context, op string, span opentracing.Span, q string, args ...any) (*md.User, error) {
	res := &md.User{}
	if err := r.conn.GetContext(ctx, res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) error {
	const op = "users.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		userCreateQ,
		u.ID,
		u.Login,
		u.Email,
		u.Password,
		u.ConfirmationCode,
		u.CodeExpiresAt,
		u.IsEmailVerified,
		u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateConfirmationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	const op = "users.UpdateConfirmationCode.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdateCodeQ, code, expiresAt, email)
	return r.expectOne(op, span, res, err, repo.ErrNotFound)
}

func (r *Repository) ConfirmEmail(ctx context.Context, userID uuid.UUID, code string) error {
	const op = "users.ConfirmEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userConfirmEmailQ, userID, code)
	return r.expectOne(op, span, res, err, repo.ErrConflict)
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uuid.UUID, code, password string) error {
	const op = "users.UpdatePassword.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdatePasswordQ, password, userID, code)
	return r.expectOne(op, span, res, err, repo.ErrNotFound)
}

// expectOne turns an exec result into noRows when nothing matched.
func (r *Repository) expectOne(op string, span opentracing.Span, res sql.Result, err error, noRows error) error {
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to exec query", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get affected rows", zap.String("op", op), zap.Error(err))
		return err
	}

	if aff == 0 {
		return noRows
	}
	return nil
}
