package database

import (
	"context"
	"time"

	"jobmarket-client/internal/common/config"
)

// PingTimeout bounds the connectivity check done when a store is opened.
const PingTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
	Close() error
}

// dial pings c under PingTimeout and closes it when the ping fails.
func dial[C pinger](ctx context.Context, c C) (C, error) {
	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	if err := c.Ping(pingCtx); err != nil {
		c.Close()
		var zero C
		return zero, err
	}
	return c, nil
}

// OpenRedis builds the client and verifies the server answers.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*RedisClient, error) {
	c, err := NewRedis(cfg)
	if err != nil {
		return nil, err
	}
	return dial(ctx, c)
}

// OpenPostgres builds the pool and verifies the server answers.
func OpenPostgres(ctx context.Context, cfg config.PostgresConfig) (*PostgresClient, error) {
	c, err := NewPostgres(cfg)
	if err != nil {
		return nil, err
	}
	return dial(ctx, c)
}
