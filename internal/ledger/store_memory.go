package ledger

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as a fallback.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record

	// FailReplace makes Replace return the given error, for write-failure tests.
	FailReplace error
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored records.
func (s *MemoryStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Replace swaps the stored table for the given records.
func (s *MemoryStore) Replace(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReplace != nil {
		return s.FailReplace
	}
	next := make([]Record, len(records))
	copy(next, records)
	s.records = next
	return nil
}

var _ Store = (*MemoryStore)(nil)
