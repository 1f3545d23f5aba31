package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrMockFailure is returned by MockBackend when Fail is set.
var ErrMockFailure = errors.New("mock backend failure")

// MockBackend mocks a remote translation backend
type MockBackend struct {
	Translations map[string]string
	Errors       map[string]error
	// Fail makes every call return ErrMockFailure.
	Fail bool
	// Delay is slept before answering, to widen race windows in tests.
	Delay time.Duration

	mu    sync.Mutex
	calls []string
}

// Name returns the backend name
func (m *MockBackend) Name() string {
	return "mock"
}

// Translate mocks translating text
func (m *MockBackend) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.Fail {
		return "", ErrMockFailure
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Calls returns the texts sent to the backend, in call order.
func (m *MockBackend) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns how many times Translate was called.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MemoryStore mocks a session store
type MemoryStore struct {
	Values map[string]string
	// GetErr and SetErr, when set, are returned by Get and Set.
	GetErr error
	SetErr error

	mu   sync.Mutex
	sets int
}

// Get mocks reading a key
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.Values[key]
	return v, ok, nil
}

// Set mocks writing a key
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	return nil
}

// SetCount returns how many times Set was called.
func (s *MemoryStore) SetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}
