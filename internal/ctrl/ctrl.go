package ctrl

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/JMURv/bloggers-auth/internal/auth"
	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/google/uuid"
)

type AppRepo interface {
	userRepo
	sessionRepo
}

type AppCtrl interface {
	authCtrl
	deviceCtrl
	registrationCtrl
	recoveryCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
}

// Notifier delivers confirmation and recovery codes. Delivery is fallible and
// the caller may retry.
type Notifier interface {
	SendConfirmationCode(ctx context.Context, email, code string) error
	SendRecoveryCode(ctx context.Context, email, code string) error
}

type Controller struct {
	au       auth.Core
	repo     AppRepo
	cache    CacheService
	mail     Notifier
	throttle throttle.Port
	clock    clock.Clock

	// absentHash stands in for the stored hash when no account matches a login.
	absentHash func() (string, error)
}

func New(
	au auth.Core,
	repo AppRepo,
	cache CacheService,
	mail Notifier,
	th throttle.Port,
	clk clock.Clock,
) *Controller {
	return &Controller{
		au:       au,
		repo:     repo,
		cache:    cache,
		mail:     mail,
		throttle: th,
		clock:    clk,
		absentHash: sync.OnceValues(
			func() (string, error) {
				return au.HashPassword(uuid.NewString())
			},
		),
	}
}
