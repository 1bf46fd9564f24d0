package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/JMURv/bloggers-auth/internal/config"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const attemptsKey = "attempts:%s:%s"

// AttemptLog keeps one sorted set per (ip, route) scored by attempt time in
// microseconds. Entries older than ttl are pruned on every write.
type AttemptLog struct {
	cli *redis.Client
	ttl time.Duration
}

func (r *Redis) Attempts(ttl time.Duration) *AttemptLog {
	return &AttemptLog{cli: r.cli, ttl: ttl}
}

func (l *AttemptLog) CountAttempts(ctx context.Context, ip, route string, since time.Time) (int64, error) {
	const op = "attempts.CountAttempts.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	count, err := l.cli.ZCount(
		ctx,
		fmt.Sprintf(attemptsKey, ip, route),
		strconv.FormatInt(since.UnixMicro(), 10),
		"+inf",
	).Result()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count attempts", zap.String("op", op), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (l *AttemptLog) AddAttempt(ctx context.Context, attempt *md.Attempt) error {
	const op = "attempts.AddAttempt.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	key := fmt.Sprintf(attemptsKey, attempt.IP, attempt.Route)
	score := attempt.CreatedAt.UnixMicro()

	pipe := l.cli.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(score), Member: uuid.NewString()})
	pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(score-l.ttl.Microseconds(), 10))
	pipe.Expire(ctx, key, l.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to add attempt", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}
