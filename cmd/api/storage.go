package main

import (
	"context"
	"fmt"
	"log"

	"weardistrict/internal/config"
	"weardistrict/internal/db"
	"weardistrict/internal/migrate"
	"weardistrict/internal/repository/kv"
)

type storage struct {
	repo  kv.Repository
	ready func(context.Context) error
	close func()
}

// openStorage builds the durable key-value store selected by STORAGE_BACKEND.
func openStorage(ctx context.Context, cfg config.Config, logger *log.Logger) (*storage, error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return &storage{repo: kv.NewMemory(), close: noop}, nil

	case config.BackendFile:
		return &storage{repo: kv.NewFile(cfg.StorageFile, logger), close: noop}, nil

	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return &storage{
			repo:  kv.NewPostgres(pool, cfg.StorageNamespace, logger),
			ready: pool.Ping,
			close: pool.Close,
		}, nil

	case config.BackendRedis:
		client, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return &storage{
			repo:  kv.NewRedis(client, kv.DefaultRedisPrefix, cfg.StorageNamespace),
			ready: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: func() {
				if err := client.Close(); err != nil {
					logger.Printf("close redis: %v", err)
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
