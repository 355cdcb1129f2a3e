package fallback

import (
	"context"
	"sync"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
)

// MemoryStore keeps the fallback record in process memory. Useful for tests
// and for runs that should not touch durable storage.
type MemoryStore struct {
	mu     sync.RWMutex
	record *blueprint.Blueprint
	saves  int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored blueprint, or ErrNotFound when none was saved.
func (s *MemoryStore) Load(ctx context.Context) (*blueprint.Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return nil, ErrNotFound
	}
	return s.record, nil
}

// Save replaces the stored blueprint.
func (s *MemoryStore) Save(ctx context.Context, b *blueprint.Blueprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = b
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

var _ Store = (*MemoryStore)(nil)
