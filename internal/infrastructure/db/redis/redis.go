// Package redis connects to Redis and hosts the session revocation store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second

	// The revocation store is hit on every authenticated request, so the
	// pool is sized for many small concurrent EXISTS calls rather than a
	// few long-lived ones.
	defaultPoolSize = 10
)

// Config captures the settings for the portal's Redis connection. Redis is
// used for one thing here: the session revocation store, checked on every
// request that carries a session cookie.
type Config struct {
	Addr        string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// Connect initialises a Redis client sized for the revocation-check workload
// and validates connectivity with a ping. Zero-value Config fields fall back
// to the package defaults.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
