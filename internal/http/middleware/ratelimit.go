package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Counter is the subset of the redis client used by the limiter.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimit allows limit requests per window for each key returned by keyFn,
// using a redis INCR counter that expires with the window. Store failures
// let the request through.
func RateLimit(store Counter, prefix string, limit int, window time.Duration, keyFn func(*gin.Context) string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		rkey := fmt.Sprintf("rl:%s:%s", prefix, key)

		count, err := store.Incr(ctx, rkey).Result()
		if err != nil {
			log.Warn().Err(err).Str("key", rkey).Msg("rate limit counter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			if err := store.Expire(ctx, rkey, window).Err(); err != nil {
				log.Warn().Err(err).Str("key", rkey).Msg("rate limit expire failed")
			}
		}
		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limited"})
			return
		}
		c.Next()
	}
}

func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}
