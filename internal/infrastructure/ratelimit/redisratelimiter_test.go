package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), "login")
	ctx := context.Background()
	rule := Rule{Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1", rule)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1", rule)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2", rule)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), "")
	ctx := context.Background()
	rule := Rule{Limit: 1, Window: time.Minute}

	_, err := limiter.Allow(ctx, "k", rule)
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "k", rule)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))

	allowed, err = limiter.Allow(ctx, "k", rule)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DisabledRule(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), "")

	allowed, err := limiter.Allow(context.Background(), "k", Rule{})
	require.NoError(t, err)
	assert.True(t, allowed)
}
