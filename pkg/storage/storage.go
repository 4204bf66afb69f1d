// Package storage is the durable key/value store the client keeps its
// session in. It mirrors browser localStorage: string keys, string values.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/redis"
)

var (
	Module      = fx.Provide(New)
	ErrNotFound = errors.New("storage: key not found")
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

type Params struct {
	fx.In
	fx.Lifecycle

	Config config.IConfig
	Logger logger.Logger
}

func New(p Params) (Storage, error) {
	backend := p.Config.GetString("session.backend")
	ctx := context.Background()

	switch backend {
	case BackendMemory:
		p.Logger.Info(ctx, "session storage: memory")
		return NewMemory(), nil
	case BackendFile, "":
		path := p.Config.GetString("session.path")
		p.Logger.Info(ctx, "session storage: file", zap.String("path", path))
		return NewFile(path)
	case BackendRedis:
		client, err := redis.New(p.Config)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.StopHook(client.Close))
		p.Logger.Info(ctx, "session storage: redis", zap.Strings("addrs", p.Config.GetStringSlice("redis.addrs")))
		return NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}
}
