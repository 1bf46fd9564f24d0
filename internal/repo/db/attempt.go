package db

import (
	"context"
	"time"

	"github.com/JMURv/bloggers-auth/internal/config"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CountAttempts(ctx context.Context, ip, route string, since time.Time) (int64, error) {
	const op = "attempts.CountAttempts.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int64
	if err := r.conn.GetContext(ctx, &count, countAttempts, ip, route, since); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count attempts", zap.String("op", op), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) AddAttempt(ctx context.Context, attempt *md.Attempt) error {
	const op = "attempts.AddAttempt.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, addAttempt, attempt.IP, attempt.Route, attempt.CreatedAt); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to add attempt", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}
