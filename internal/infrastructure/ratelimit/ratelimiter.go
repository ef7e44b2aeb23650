// Package ratelimit throttles requests per caller key.
package ratelimit

import (
	"context"
	"time"
)

// Rule is a sliding-window limit: at most Limit hits per Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, rule Rule) (bool, error)
	Reset(ctx context.Context, key string) error
}
