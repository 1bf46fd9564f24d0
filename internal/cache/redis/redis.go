package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/bloggers-auth/internal/cache"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Redis struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Redis {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
			DB:       conf.DB,
		},
	)

	if _, err := cli.Ping(context.Background()).Result(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return &Redis{cli: cli}
}

func (r *Redis) Close() error {
	return r.cli.Close()
}

func (r *Redis) GetToStruct(ctx context.Context, key string, dest any) error {
	const op = "cache.GetToStruct.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	val, err := r.cli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.ErrNotFoundInCache
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("failed to get from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		zap.L().Debug("failed to unmarshal cached value", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, t time.Duration, key string, val any) {
	const op = "cache.Set.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := r.cli.Set(ctx, key, val, t).Err(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("failed to set to cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}
