package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

var userColumns = []string{
	"u.id",
	"u.login",
	"u.email",
	"u.password",
	"u.confirmation_code",
	"u.code_expires_at",
	"u.is_email_verified",
	"u.created_at",
	"u.updated_at",
}

// buildLoginOrEmailQuery matches the value against both unique columns.
// Logins cannot contain '@', so at most one row can match.
func buildLoginOrEmailQuery(ctx context.Context, loginOrEmail string) (string, []any, error) {
	const op = "users.buildLoginOrEmailQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := sq.Select(userColumns...).
		From("users u").
		Where(sq.Or{
			sq.Eq{"u.login": loginOrEmail},
			sq.Eq{"u.email": loginOrEmail},
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build login or email query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	return q, args, nil
}
