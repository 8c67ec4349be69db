package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis connects to Redis when REDIS_URI is set. Redis is optional:
// without it login rate limiting and background jobs are disabled.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("REDIS_URI not set, skipping Redis")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("Failed to connect Redis:", err)
		RedisClient = nil
		RedisURI = ""
		return
	}

	log.Println("Redis connected successfully")
}
