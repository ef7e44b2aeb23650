package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/ratelimit"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

// RateLimit throttles a route per client IP. Each route gets its own scope
// so login attempts do not count against other endpoints.
type RateLimit struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimit(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimit {
	return &RateLimit{limiter: limiter, logger: logger}
}

// Limit returns a Gin middleware that enforces rule per client IP within scope.
func (r *RateLimit) Limit(scope string, rule ratelimit.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c, scope, rule) {
			return
		}
		c.Next()
	}
}

// LimitFailures counts every request like Limit but clears the counter once
// the handler responds successfully, so only failed attempts accumulate.
func (r *RateLimit) LimitFailures(scope string, rule ratelimit.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c, scope, rule) {
			return
		}
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := r.limiter.Reset(c.Request.Context(), scopeKey(c, scope)); err != nil {
			r.logger.Warnw("failed to reset rate limit", "scope", scope, "error", err)
		}
	}
}

func scopeKey(c *gin.Context, scope string) string {
	return scope + ":" + c.ClientIP()
}

// allow aborts the request when the limit is exceeded and reports whether the
// chain may continue.
func (r *RateLimit) allow(c *gin.Context, scope string, rule ratelimit.Rule) bool {
	allowed, err := r.limiter.Allow(c.Request.Context(), scopeKey(c, scope), rule)
	if err != nil {
		// Redis being unavailable must not lock every admin out.
		r.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
		return true
	}

	if !allowed {
		r.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
		c.Abort()
		return false
	}
	return true
}
