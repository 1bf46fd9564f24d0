// Package throttle limits authentication attempts per client address and
// route with a sliding window over an append-only attempt log.
package throttle

import (
	"context"
	"time"

	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	md "github.com/JMURv/bloggers-auth/internal/models"
	metrics "github.com/JMURv/bloggers-auth/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Route is the key an attempt is counted under. Windows are independent per
// route.
type Route string

const (
	Login               Route = "login"
	Registration        Route = "registration"
	RegistrationResend  Route = "registration-email-resending"
	RegistrationConfirm Route = "registration-confirmation"
	PasswordRecovery    Route = "password-recovery"
	NewPassword         Route = "new-password"
)

const (
	defaultLimit  = 5
	defaultWindow = 10 * time.Second
)

type Port interface {
	Allow(ctx context.Context, ip string, route Route) (bool, error)
}

type AttemptLog interface {
	CountAttempts(ctx context.Context, ip, route string, since time.Time) (int64, error)
	AddAttempt(ctx context.Context, attempt *md.Attempt) error
}

type Core struct {
	log    AttemptLog
	clock  clock.Clock
	limit  int64
	window time.Duration
}

func New(conf config.Config, log AttemptLog, clk clock.Clock) *Core {
	c := &Core{
		log:    log,
		clock:  clk,
		limit:  int64(conf.Throttle.Limit),
		window: conf.Throttle.Window,
	}

	if c.limit <= 0 {
		c.limit = defaultLimit
	}
	if c.window <= 0 {
		c.window = defaultWindow
	}
	return c
}

// Check reports whether another attempt for (ip, route) fits into the current
// window. It never records anything.
func (c *Core) Check(ctx context.Context, ip string, route Route) (bool, error) {
	const op = "throttle.Check.throttle"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	count, err := c.log.CountAttempts(ctx, ip, string(route), c.clock.Now().Add(-c.window))
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to count attempts",
			zap.String("op", op),
			zap.String("route", string(route)),
			zap.Error(err),
		)
		return false, err
	}

	return count < c.limit, nil
}

func (c *Core) Record(ctx context.Context, ip string, route Route) error {
	const op = "throttle.Record.throttle"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.log.AddAttempt(
		ctx, &md.Attempt{
			IP:        ip,
			Route:     string(route),
			CreatedAt: c.clock.Now(),
		},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to record attempt",
			zap.String("op", op),
			zap.String("route", string(route)),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Allow checks the window and, when the attempt fits, records it before the
// protected operation runs. A throttled attempt is not recorded.
func (c *Core) Allow(ctx context.Context, ip string, route Route) (bool, error) {
	ok, err := c.Check(ctx, ip, route)
	if err != nil {
		return false, err
	}

	if !ok {
		metrics.ThrottledAttempt(string(route))
		zap.L().Debug(
			"attempt throttled",
			zap.String("ip", ip),
			zap.String("route", string(route)),
		)
		return false, nil
	}

	if err = c.Record(ctx, ip, route); err != nil {
		return false, err
	}

	return true, nil
}
