package storage

import (
	"context"
	"sync"
)

type memory struct {
	m     sync.RWMutex
	items map[string]string
}

func NewMemory() Storage {
	return &memory{items: map[string]string{}}
}

func (s *memory) GetItem(_ context.Context, key string) (string, error) {
	s.m.RLock()
	defer s.m.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *memory) SetItem(_ context.Context, key, value string) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.items[key] = value
	return nil
}

func (s *memory) RemoveItem(_ context.Context, key string) error {
	s.m.Lock()
	defer s.m.Unlock()

	delete(s.items, key)
	return nil
}
