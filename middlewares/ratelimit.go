package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit caps requests per client IP per second using a Redis fixed
// window. A nil client disables limiting entirely.
func RateLimit(rdb *redis.Client, maxRequests int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP()
		count, _ := rdb.Get(c.Request.Context(), key).Int()
		if count >= maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		rdb.Incr(c.Request.Context(), key)
		rdb.Expire(c.Request.Context(), key, time.Second)
		c.Next()
	}
}
