package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/itemshop/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// Result tells the caller whether the attempt may proceed and, if not, how
// long to wait.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter int
}

// Limiter throttles login attempts per account.
type Limiter interface {
	CheckLoginAttempt(ctx context.Context, email string) (*Result, error)
}

type redisLimiter struct {
	client *redis.Client
	config *config.RateConfig
}

func NewRedisLimiter(client *redis.Client, cfg *config.RateConfig) Limiter {
	return &redisLimiter{client: client, config: cfg}
}

// CheckLoginAttempt records the attempt in a sliding window and reports
// whether the account is over its budget.
func (r *redisLimiter) CheckLoginAttempt(ctx context.Context, email string) (*Result, error) {

	key := fmt.Sprintf("login_attempts:%s", email)

	now := time.Now().Unix()

	// This means only login attempts after 'this time' are counted.
	windowStart := now - int64(r.config.WindowSize.Seconds())

	// redis pipeline for executing multiple commands
	pipe := r.client.Pipeline()

	// remove old entries from the pipeline
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// add the current login attempt
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})

	// count the number of login attempts
	count := pipe.ZCard(ctx, key)

	// delete the redis key after expiry
	pipe.Expire(ctx, key, r.config.WindowSize)

	// execute the commands
	_, err := pipe.Exec(ctx)

	if err != nil {
		return nil, err
	}

	attempts := count.Val()
	remaining := r.config.MaxAttempts - attempts

	if attempts >= r.config.MaxAttempts {
		oldest, err := r.client.ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return &Result{}, err
		}

		// convert the oldest attempt into a time value.
		oldestTime, err := strconv.ParseInt(oldest[0], 10, 64)
		if err != nil {
			return &Result{}, err
		}

		retryAfter := int64(r.config.WindowSize.Seconds()) - (now - oldestTime)

		return &Result{RetryAfter: int(retryAfter)}, nil
	}

	return &Result{Allowed: true, Remaining: int(remaining)}, nil

}
