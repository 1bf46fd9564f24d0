package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/bloggers-auth/internal/auth"
	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/cache/redis"
	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/ctrl"
	"github.com/JMURv/bloggers-auth/internal/hdl/grpc"
	"github.com/JMURv/bloggers-auth/internal/hdl/http"
	"github.com/JMURv/bloggers-auth/internal/observability/metrics/prometheus"
	"github.com/JMURv/bloggers-auth/internal/observability/tracing/jaeger"
	"github.com/JMURv/bloggers-auth/internal/repo/db"
	"github.com/JMURv/bloggers-auth/internal/repo/memory"
	"github.com/JMURv/bloggers-auth/internal/smtp"
	"go.uber.org/zap"
)

const configPath = ".env"

type repository interface {
	ctrl.AppRepo
	throttle.AttemptLog
	Close(ctx context.Context) error
}

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func mustRepository(conf config.Config, clk clock.Clock) repository {
	switch conf.DB.Driver {
	case "memory":
		zap.L().Warn("Using in-memory repository, data will not survive a restart")
		return memory.New(clk)
	case "postgres":
		return db.New(conf)
	default:
		zap.L().Fatal("unknown repository driver", zap.String("driver", conf.DB.Driver))
		return nil
	}
}

func attemptLog(conf config.Config, repo repository, cache *redis.Redis) throttle.AttemptLog {
	if conf.Throttle.Backend == "redis" {
		return cache.Attempts(conf.Throttle.Window)
	}
	return repo
}

// @title Bloggers auth API
// @version 1.0
// @description Registration, login and device session management.
// @host localhost:8080
// @BasePath /
func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, &conf.Jaeger)

	clk := clock.Real{}
	cache := redis.New(conf.Redis)
	repo := mustRepository(conf, clk)
	au := auth.New(conf, clk)
	th := throttle.New(conf, attemptLog(conf, repo, cache), clk)
	svc := ctrl.New(au, repo, cache, smtp.New(conf), th, clk)

	h := http.New(au, svc, conf.Auth)
	gh := grpc.New(conf.ServiceName)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)
	go gh.Start(conf.Server.GRPCPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()

	if err := h.Close(sctx); err != nil {
		zap.L().Warn("Error closing HTTP handler", zap.Error(err))
	}

	if err := gh.Close(); err != nil {
		zap.L().Warn("Error closing gRPC handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(sctx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	scancel()
	cancel()
	os.Exit(0)
}
