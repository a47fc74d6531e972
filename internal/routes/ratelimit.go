package routes

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	"github.com/BruksfildServices01/showroom-scheduler/internal/middleware"
)

// NewRateCounter connects to Redis when REDIS_URL is set. An unreachable
// Redis disables rate limiting instead of failing startup.
func NewRateCounter(cfg *config.Config, log *zap.Logger) (middleware.Counter, func() error) {
	noop := func() error { return nil }
	if cfg.RedisURL == "" {
		return nil, noop
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, rate limiting disabled", zap.Error(err))
		return nil, noop
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
		_ = rdb.Close()
		return nil, noop
	}

	return middleware.NewRedisCounter(rdb), rdb.Close
}
