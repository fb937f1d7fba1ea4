package session

import (
	"context"
	"fmt"
	"time"

	"jobmarket-client/internal/common/config"
	"jobmarket-client/internal/common/database"
	"jobmarket-client/internal/common/logger"
)

// Open builds the Manager for the configured backend. The returned close
// func releases the backend's connection.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Manager, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := database.OpenRedis(ctx, cfg.Database.Redis)
		if err != nil {
			return nil, noop, err
		}
		ttl := time.Duration(cfg.Session.TTL) * time.Second
		return NewManager(NewRedisBackend(client.Client, ttl), cfg.Session.KeyPrefix, log), client.Close, nil

	case config.BackendPostgres:
		client, err := database.OpenPostgres(ctx, cfg.Database.Postgres)
		if err != nil {
			return nil, noop, err
		}
		backend := NewSQLBackend(client.DB)
		if err := backend.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("failed to create client_state table: %w", err)
		}
		return NewManager(backend, cfg.Session.KeyPrefix, log), client.Close, nil

	case config.BackendMemory, "":
		return NewManager(NewMemoryBackend(), cfg.Session.KeyPrefix, log), noop, nil

	default:
		return nil, noop, fmt.Errorf("session backend %q is not supported", cfg.Session.Backend)
	}
}
