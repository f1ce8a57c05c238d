package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the process-wide Redis client used for rate limiting
// and the payment idempotency window. Redis is optional: if the connection
// fails both features degrade to no-ops.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Printf("WARNING: Redis unavailable (%v), rate limiting and payment de-duplication disabled", err)
		RedisClient = nil
		return
	}
	log.Println("Redis connected")
}
