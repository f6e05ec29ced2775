package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimitMiddleware applies a fixed-window per-IP limit backed by
// redis. Redis errors fail open: the limiter must never take the API
// down with it.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, err := rdb.Incr(c, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c, key, window)
		} else if ttl, err := rdb.TTL(c, key).Result(); err == nil && ttl < 0 {
			// The EXPIRE after the first INCR failed, leaving a counter
			// that never resets. Arm it now so the window recovers.
			rdb.Expire(c, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too_many_requests"})
			return
		}

		c.Next()
	}
}
