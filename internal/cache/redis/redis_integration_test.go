//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/JMURv/bloggers-auth/internal/cache"
	"github.com/JMURv/bloggers-auth/internal/config"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *Redis {
	t.Helper()
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, redisC)
	require.NoError(t, err)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	r := New(config.RedisConfig{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRedis_Cache(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	type cached struct {
		Login string `json:"login"`
	}

	var dest cached
	assert.ErrorIs(t, r.GetToStruct(ctx, "user:1", &dest), cache.ErrNotFoundInCache)

	bytes, err := json.Marshal(cached{Login: "alice"})
	require.NoError(t, err)
	r.Set(ctx, time.Minute, "user:1", bytes)

	require.NoError(t, r.GetToStruct(ctx, "user:1", &dest))
	assert.Equal(t, "alice", dest.Login)
}

func TestAttemptLog(t *testing.T) {
	r := setupRedis(t)
	log := r.Attempts(10 * time.Second)
	ctx := context.Background()

	start := time.Now().UTC()
	for i := 0; i < 3; i++ {
		err := log.AddAttempt(ctx, &md.Attempt{
			IP:        "1.1.1.1",
			Route:     "login",
			CreatedAt: start.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	count, err := log.CountAttempts(ctx, "1.1.1.1", "login", start)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = log.CountAttempts(ctx, "1.1.1.1", "login", start.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = log.CountAttempts(ctx, "1.1.1.1", "registration", start)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = log.CountAttempts(ctx, "2.2.2.2", "login", start)
	require.NoError(t, err)
	assert.Zero(t, count)
}
