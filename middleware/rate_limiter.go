// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window counter per client IP, backed by redis so
// limits hold across replicas. A nil limiter disables limiting entirely
// (local runs without redis).
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

type RateLimiterConfig struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
	KeyPrefix         string
}

func (l *RateLimiter) Limit(cfg RateLimiterConfig) gin.HandlerFunc {
	if l == nil || l.client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + ":" + c.ClientIP()

		count, err := l.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Fail open: a broken limiter must not take auth down with it.
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if count == 1 {
			l.client.Expire(c.Request.Context(), key, cfg.WindowDuration)
		}

		if count > int64(cfg.RequestsPerWindow) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, slow down",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
