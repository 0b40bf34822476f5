// Package memstore provides an in-memory byte store, mainly for tests.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"csvtable/internal/store"
)

// Store keeps every resource in a map. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) ReadAll(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.data[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, store.ErrNotExist)
	}
	return text, nil
}

func (s *Store) WriteAll(ctx context.Context, name string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[name] = text
	return nil
}

// Len reports how many resources the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
