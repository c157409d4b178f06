package memory

import (
	"context"
	"reflect"
	"sync"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/core/ports/driven"
)

// Ensure HoldingStore implements the interface.
var _ driven.HoldingStore = (*HoldingStore)(nil)

// HoldingStore is an in-memory implementation of driven.HoldingStore
// for testing. It mirrors the document store's upsert counting: a new
// key counts as upserted, an existing key as matched, and as modified
// only when the stored record actually changes.
type HoldingStore struct {
	mu      sync.RWMutex
	records map[domain.BusinessKey]domain.Holding
}

// NewHoldingStore creates a new in-memory holding store.
func NewHoldingStore() *HoldingStore {
	return &HoldingStore{
		records: make(map[domain.BusinessKey]domain.Holding),
	}
}

// Write upserts the records keyed by business key.
func (s *HoldingStore) Write(_ context.Context, records []domain.Holding) (domain.WriteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var counts domain.WriteCounts
	for _, h := range records {
		key := h.Key()
		old, ok := s.records[key]
		if !ok {
			counts.Upserted++
		} else {
			counts.Matched++
			if !reflect.DeepEqual(old, h) {
				counts.Modified++
			}
		}
		s.records[key] = h
	}
	return counts, nil
}

// Len returns the number of stored records.
func (s *HoldingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get retrieves a stored record by business key.
func (s *HoldingStore) Get(key domain.BusinessKey) (domain.Holding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.records[key]
	return h, ok
}
