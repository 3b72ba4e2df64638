package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the login rate limiter. It stays nil when REDIS_URI is
// unset and the limiter then allows every attempt.
var RedisClient *redis.Client

func InitRedis(uri string) {
	if uri == "" {
		log.Println("REDIS_URI not set, login rate limiting disabled")
		return
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		log.Fatal("Invalid REDIS_URI:", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	RedisClient = client
}
