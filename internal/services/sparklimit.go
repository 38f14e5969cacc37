package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/utils"
)

// SparkLimiter counts spark calls per user per window. Allow returns false
// only when the limit is provably exceeded; infrastructure failures fail open
// so brainstorming never breaks because redis is down.
type SparkLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID) (bool, error)
}

type redisSparkLimiter struct {
	log    *logger.Logger
	client *redis.Client
	limit  int
	window time.Duration
}

func NewSparkLimiter(log *logger.Logger) SparkLimiter {
	serviceLog := log.With("service", "SparkLimiter")
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		serviceLog.Warn("REDIS_ADDR not set, spark rate limiting disabled")
		return &noopSparkLimiter{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	limit := utils.GetEnvAsInt("SPARK_RATE_LIMIT", 20, serviceLog)
	windowSec := utils.GetEnvAsInt("SPARK_RATE_WINDOW_SECONDS", 3600, serviceLog)
	return &redisSparkLimiter{
		log:    serviceLog,
		client: client,
		limit:  limit,
		window: time.Duration(windowSec) * time.Second,
	}
}

func (rl *redisSparkLimiter) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := fmt.Sprintf("spark:calls:%s", userID.String())
	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		rl.log.Warn("spark limiter unavailable, allowing call", "error", err)
		return true, nil
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			rl.log.Warn("failed to set spark limiter expiry", "error", err)
		}
	}
	return count <= int64(rl.limit), nil
}

type noopSparkLimiter struct{}

func (noopSparkLimiter) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	return true, nil
}
