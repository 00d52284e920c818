package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := LoginLimitConfig{MaxAttempts: 3, WindowMinutes: 15}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("login:a@b.com", config)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("login:a@b.com", config)
	require.NoError(t, err)
	assert.False(t, allowed, "the window is exhausted")
}

func TestRedisRateLimiter_Allow_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := LoginLimitConfig{MaxAttempts: 1, WindowMinutes: 15}

	allowed, err := limiter.Allow("login:a@b.com", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("login:a@b.com", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow("login:other@b.com", config)
	require.NoError(t, err)
	assert.True(t, allowed, "a different address has its own window")
}

func TestRedisRateLimiter_Allow_ZeroLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow("login:a@b.com", LoginLimitConfig{MaxAttempts: 0, WindowMinutes: 15})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := LoginLimitConfig{MaxAttempts: 2, WindowMinutes: 15}

	for i := 0; i < 3; i++ {
		limiter.Allow("login:a@b.com", config)
	}

	allowed, err := limiter.Allow("login:a@b.com", config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset("login:a@b.com"))

	allowed, err = limiter.Allow("login:a@b.com", config)
	require.NoError(t, err)
	assert.True(t, allowed, "reset clears the failure window")
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := LoginLimitConfig{MaxAttempts: 5, WindowMinutes: 15}
	window := config.Window()

	used, err := limiter.GetRemaining("login:a@b.com", window)
	require.NoError(t, err)
	assert.Equal(t, int64(0), used)

	limiter.Allow("login:a@b.com", config)
	limiter.Allow("login:a@b.com", config)

	used, err = limiter.GetRemaining("login:a@b.com", window)
	require.NoError(t, err)
	assert.Equal(t, int64(2), used)
}

func TestLoginLimitConfig_Window(t *testing.T) {
	assert.Equal(t, 15*time.Minute, LoginLimitConfig{MaxAttempts: 5, WindowMinutes: 15}.Window())
}
