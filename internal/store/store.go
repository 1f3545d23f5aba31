package store

import (
	"context"
	"fmt"
	"sync"
)

// Store is a string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open opens the store of the given kind at path. Kind is "sqlite", "file"
// or "memory"; path is ignored for "memory".
func Open(kind, path string) (Store, error) {
	switch kind {
	case "sqlite":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "file":
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "memory", "none", "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache store: %s", kind)
	}
}

// Memory keeps values for the life of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
