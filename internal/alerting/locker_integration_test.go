//go:build integration

package alerting

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testRedis *redis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	tc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, err := tc.Host(ctx)
	if err != nil {
		fmt.Println("cannot get container host:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}
	port, err := tc.MappedPort(ctx, "6379/tcp")
	if err != nil {
		fmt.Println("cannot get mapped port:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}
	testRedis = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	if err := testRedis.Ping(ctx).Err(); err != nil {
		fmt.Println("cannot reach redis:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = testRedis.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func TestRedisLocker_SingleHolder(t *testing.T) {
	ctx := context.Background()
	locker := NewRedisLocker(testRedis)

	token, ok, err := locker.Acquire(ctx, 42, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, token)

	_, ok, err = locker.Acquire(ctx, 42, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be rejected")

	require.NoError(t, locker.Release(ctx, 42, token))

	again, ok, err := locker.Acquire(ctx, 42, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, locker.Release(ctx, 42, again))
}

func TestRedisLocker_ReleaseIgnoresForeignToken(t *testing.T) {
	ctx := context.Background()
	locker := NewRedisLocker(testRedis)

	token, ok, err := locker.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, locker.Release(ctx, 7, "someone-else"))

	_, ok, err = locker.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "lock must survive a release with a foreign token")

	require.NoError(t, locker.Release(ctx, 7, token))
}
