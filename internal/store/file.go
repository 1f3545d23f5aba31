package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt is returned when a store file does not hold a JSON object.
var ErrCorrupt = errors.New("corrupt store")

// File stores all values as one JSON object in a file. The file is read
// once on first access and rewritten atomically on every Set.
type File struct {
	path string

	mu     sync.Mutex
	loaded bool
	values map[string]string
}

// OpenFile returns a store backed by the JSON file at path. The file is
// created on the first Set.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("file store needs a path")
	}
	return &File{path: path}, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// A corrupt file is replaced rather than blocking writes forever. An
	// unreadable one is left alone.
	if err := f.load(); errors.Is(err, ErrCorrupt) {
		f.values = make(map[string]string)
		f.loaded = true
	} else if err != nil {
		return err
	}
	f.values[key] = value

	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}

// load must be called with mu held.
func (f *File) load() error {
	if f.loaded {
		return nil
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.values = make(map[string]string)
		f.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCorrupt, f.path, err)
	}
	// A JSON null decodes to a nil map.
	if values == nil {
		values = make(map[string]string)
	}

	f.values = values
	f.loaded = true
	return nil
}
