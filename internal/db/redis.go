package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/cocktails-rolodex/cocktails-api/internal/config"
)

// NewRedis connects to Redis when REDIS_ADDR is set. It returns nil when Redis
// is not configured or unreachable; callers treat nil as "publishing disabled".
func NewRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, audit events will not be published",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = client.Close()
		return nil
	}

	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return client
}
