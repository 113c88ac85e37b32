package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Ensure PreparationStore implements the interface.
var _ driven.PreparationStore = (*PreparationStore)(nil)

// PreparationStore is an in-memory implementation of driven.PreparationStore.
type PreparationStore struct {
	mu      sync.RWMutex
	records map[string]domain.PreparationRecord
}

// NewPreparationStore creates a new in-memory preparation store.
func NewPreparationStore() *PreparationStore {
	return &PreparationStore{
		records: make(map[string]domain.PreparationRecord),
	}
}

// Save stores or replaces the record for an annotation.
func (s *PreparationStore) Save(_ context.Context, record domain.PreparationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Ref] = record
	return nil
}

// Get retrieves the record for an annotation.
func (s *PreparationStore) Get(_ context.Context, ref string) (*domain.PreparationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[ref]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns all records, most recent first.
func (s *PreparationStore) List(_ context.Context) ([]domain.PreparationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.PreparationRecord, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].PreparedAt.After(records[j].PreparedAt)
	})
	return records, nil
}

// Delete removes the record for an annotation.
func (s *PreparationStore) Delete(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, ref)
	return nil
}
