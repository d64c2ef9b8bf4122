package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/priyanshupaikra/Inter-AI/internal/config"
	"github.com/redis/go-redis/v9"
)

// Client wraps the redis connection backing the per-interviewer rate
// limiter. Nothing else in the system uses redis.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to redis and verifies the connection before returning.
func NewClient(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Client exposes the underlying go-redis client to the rate limiter.
func (c *Client) Client() *redis.Client {
	return c.rdb
}
