package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mxarte/artweek-backend/config"
)

var (
	// RedisClient is nil when REDIS_ADDR is unset; callers must treat Redis
	// as optional and fall back to in-process behavior.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// InitRedis connects the shared client. A missing REDIS_ADDR is not an
// error: the rate limiter falls back to its memory store and the digest
// lock is skipped.
func InitRedis(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		fmt.Println("ℹ️ REDIS_ADDR not set, Redis features disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(Ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	fmt.Println("✅ Redis connected")
	return nil
}

// AcquireDailyLock takes a best-effort distributed lock so only one replica
// runs a given daily job. Returns true when the lock was won, and always
// true when Redis is not configured (single-instance assumption).
func AcquireDailyLock(name string, day time.Time) bool {
	if RedisClient == nil {
		return true
	}
	key := fmt.Sprintf("lock:%s:%s", name, day.Format("2006-01-02"))
	ok, err := RedisClient.SetNX(Ctx, key, 1, 26*time.Hour).Result()
	if err != nil {
		fmt.Printf("⚠️ Redis lock %s failed: %v (running anyway)\n", key, err)
		return true
	}
	return ok
}
