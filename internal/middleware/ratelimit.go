package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
)

// Counter increments a fixed-window counter and returns the new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return fixedWindowScript.Run(ctx, r.rdb, []string{key}, window.Milliseconds()).Int64()
}

// RateLimit caps requests per caller and window. Without a counter, or when
// the counter fails, requests pass through.
func RateLimit(counter Counter, prefix string, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		caller := IdentityFrom(c).UserID
		if caller == "" {
			caller = c.ClientIP()
		}

		count, err := counter.Incr(c.Request.Context(), prefix+":"+caller, window)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count > int64(limit) {
			httperr.TooManyRequests(c, "rate_limited", "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
