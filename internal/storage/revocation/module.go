package revocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/coworking/internal/config"
	"github.com/polkiloo/coworking/internal/domain/repository"
)

// Module provides the token revocation store: Redis when configured, in-memory otherwise.
var Module = fx.Provide(newStore)

var newRedisClient = func(opts *redis.Options) redisClient {
	return redis.NewClient(opts)
}

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStore(p storeParams) (repository.RevocationStore, error) {
	if p.Config.RedisURL == "" {
		p.Logger.Info("using in-memory token revocation store")
		return NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(p.Config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	store := NewRedisStore(newRedisClient(opts))
	if err := store.Ping(p.Ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	p.Logger.Info("using redis token revocation store", slog.String("addr", opts.Addr))
	return store, nil
}
