package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maison/pkg/config"
)

var ErrNotFound = errors.New("not found")

type Client interface {
	Save(ctx context.Context, key string, value any, dur time.Duration) error
	Find(ctx context.Context, key string) (value string, err error)
	Delete(ctx context.Context, keys ...string) (err error)
	Close() error
}

type client struct {
	redis  redis.UniversalClient
	prefix string
}

// New connects to redis using the redis.* config keys and pings it once.
func New(cfg config.IConfig) (Client, error) {
	var (
		prefix  = cfg.GetString("redis.prefix")
		timeout = 5 * time.Second
	)

	connOpt := redis.UniversalOptions{
		ClientName:  cfg.GetString("redis.clientName"),
		Addrs:       cfg.GetStringSlice("redis.addrs"),
		Username:    cfg.GetString("redis.username"),
		Password:    cfg.GetString("redis.password"),
		DB:          cfg.GetInt("redis.db"),
		PoolSize:    cfg.GetInt("redis.poolSize"),
		DialTimeout: timeout,
	}

	conn := redis.NewUniversalClient(&connOpt)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &client{
		redis:  conn,
		prefix: prefix,
	}, nil
}

func (c client) getPrefixedKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + "." + key
}

func (c client) Save(ctx context.Context, key string, value any, dur time.Duration) error {
	err := c.redis.Set(ctx, c.getPrefixedKey(key), value, dur).Err()
	if err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

func (c client) Find(ctx context.Context, key string) (string, error) {
	value, err := c.redis.Get(ctx, c.getPrefixedKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return value, nil
}

func (c client) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, c.getPrefixedKey(k))
	}

	if err := c.redis.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

func (c client) Close() error {
	return c.redis.Close()
}
