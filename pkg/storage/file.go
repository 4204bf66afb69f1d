package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// file keeps every item in one JSON object on disk. Each write replaces the
// file atomically through a rename.
type file struct {
	m    sync.Mutex
	path string
}

func NewFile(path string) (Storage, error) {
	if path == "" {
		return nil, errors.New("storage: empty file path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("storage: create dir: %w", err)
		}
	}
	return &file{path: path}, nil
}

func (s *file) GetItem(_ context.Context, key string) (string, error) {
	s.m.Lock()
	defer s.m.Unlock()

	items, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *file) SetItem(_ context.Context, key, value string) error {
	s.m.Lock()
	defer s.m.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.store(items)
}

func (s *file) RemoveItem(_ context.Context, key string) error {
	s.m.Lock()
	defer s.m.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.store(items)
}

func (s *file) load() (map[string]string, error) {
	items := map[string]string{}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return items, nil
		}
		return nil, fmt.Errorf("storage: read: %w", err)
	}
	if len(b) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("storage: decode: %w", err)
	}
	return items, nil
}

func (s *file) store(items map[string]string) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}
