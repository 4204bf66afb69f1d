package storage

import (
	"context"
	"errors"

	"maison/pkg/redis"
)

type redisStorage struct {
	client redis.Client
}

func NewRedis(client redis.Client) Storage {
	return &redisStorage{client: client}
}

func (s *redisStorage) GetItem(ctx context.Context, key string) (string, error) {
	v, err := s.client.Find(ctx, key)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *redisStorage) SetItem(ctx context.Context, key, value string) error {
	// no expiry: the session lives until logout or a rejected verify
	return s.client.Save(ctx, key, value, 0)
}

func (s *redisStorage) RemoveItem(ctx context.Context, key string) error {
	return s.client.Delete(ctx, key)
}
