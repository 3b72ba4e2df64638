package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// LoginLimiter is a fixed-window counter over redis guarding the login
// endpoint. With a nil client every attempt is allowed.
type LoginLimiter struct {
	Client *redis.Client
}

// Allow reports whether the caller identified by key may attempt a login.
// Redis failures allow the attempt: a broken limiter must not lock users out.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.Client == nil {
		return true
	}

	redisKey := fmt.Sprintf("login_attempts:%s", key)

	count, err := l.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Printf("login limiter unavailable: %v", err)
		return true
	}
	if count == 1 {
		if err := l.Client.Expire(ctx, redisKey, loginAttemptWindow).Err(); err != nil {
			log.Printf("login limiter expire failed: %v", err)
		}
	}

	return count <= loginAttemptLimit
}
