package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client. Redis is optional here; it only
// backs the rate limiter, and the app degrades gracefully without it.
type RedisClient struct {
	*redis.Client
}

// NewRedis creates a new Redis client
func NewRedis(addr, password string, db int) *RedisClient {
	return &RedisClient{redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Ping verifies connectivity
func (c *RedisClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
