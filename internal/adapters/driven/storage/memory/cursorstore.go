package memory

import (
	"context"
	"sync"

	"github.com/fundlens/fundlens/internal/core/ports/driven"
)

// Ensure CursorStore implements the interface.
var _ driven.CursorStore = (*CursorStore)(nil)

// CursorStore is an in-memory implementation of driven.CursorStore for
// testing.
type CursorStore struct {
	mu  sync.RWMutex
	iso string
}

// NewCursorStore creates a new in-memory cursor store.
func NewCursorStore() *CursorStore {
	return &CursorStore{}
}

// Load returns the stored cursor, or the empty string.
func (s *CursorStore) Load(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.iso, nil
}

// Save replaces the stored cursor.
func (s *CursorStore) Save(_ context.Context, iso string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iso = iso
	return nil
}
