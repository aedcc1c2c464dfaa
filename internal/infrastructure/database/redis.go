package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis client for the challenge store
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Ping verifies the connection is usable before the server starts
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
