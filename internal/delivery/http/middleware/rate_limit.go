package middleware

import (
	"net/http"
	"strconv"
	"time"

	"go-jetlab-backend/internal/delivery/http/response"
	"go-jetlab-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitMessage is the policy message returned with every 429.
const RateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimitConfig holds configuration for the submission rate limit.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix in the counter store
	KeyPrefix string
	// Primary counter store
	Store CounterStore
	// Fallback used when the primary store errors; nil fails open
	Fallback CounterStore
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
}

// RateLimit rejects requests over the per-IP limit before any validation or
// side effect runs. Counters are shared across all routes the middleware is
// mounted on.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string {
			return c.ClientIP()
		}
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		count, resetAt, err := cfg.Store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			if cfg.Fallback == nil {
				// Fail open: availability over strictness for a contact form
				logger.Log.Warn("rate limit store unavailable", "error", err)
				c.Next()
				return
			}
			logger.Log.Warn("rate limit store unavailable, using in-memory fallback", "error", err)
			count, resetAt, _ = cfg.Fallback.Incr(c.Request.Context(), key, cfg.Window)
		}

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"))

			response.Error(c, http.StatusTooManyRequests, RateLimitMessage, "")
			c.Abort()
			return
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}
