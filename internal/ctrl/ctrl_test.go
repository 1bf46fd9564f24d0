package ctrl

import (
	"testing"
	"time"

	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	auth     *mocks.MockCore
	repo     *mocks.MockAppRepo
	cache    *mocks.MockCacheService
	mail     *mocks.MockNotifier
	throttle *mocks.MockPort
	clock    *clock.Mock
}

func newTestController(t *testing.T) (*Controller, testDeps) {
	t.Helper()
	ctrlMock := gomock.NewController(t)

	d := testDeps{
		auth:     mocks.NewMockCore(ctrlMock),
		repo:     mocks.NewMockAppRepo(ctrlMock),
		cache:    mocks.NewMockCacheService(ctrlMock),
		mail:     mocks.NewMockNotifier(ctrlMock),
		throttle: mocks.NewMockPort(ctrlMock),
		clock:    clock.NewMock(testNow),
	}
	return New(d.auth, d.repo, d.cache, d.mail, d.throttle, d.clock), d
}
