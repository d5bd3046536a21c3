package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Service owns the application table. All reads and writes of the backing
// store go through its lock, so row assignment observes the true current
// count and concurrent updates cannot interleave partial writes.
type Service struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

// NewService constructs a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Append adds a new record with status Applied and returns its row number.
// Row numbers are count+1 at append time, strictly increasing and never
// reused.
func (s *Service) Append(ctx context.Context, entry Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("ledger append: %w", err)
	}

	rec := Record{
		Row:       len(records) + 1,
		Company:   entry.Company,
		Role:      entry.Role,
		JobID:     entry.JobID,
		Link:      entry.Link,
		Status:    StatusApplied,
		AppliedAt: s.now().UTC(),
	}
	records = append(records, rec)

	if err := s.store.Replace(ctx, records); err != nil {
		return 0, fmt.Errorf("ledger append: %w", err)
	}
	return rec.Row, nil
}

// List returns all records in append order. It never mutates storage.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger list: %w", err)
	}
	return records, nil
}

// UpdateStatus sets the status of an existing row and returns a confirmation
// message. Overwrites between statuses are allowed (operator correction);
// re-applying the current status is a no-op in effect. Unknown rows fail with
// ErrRecordNotFound and leave the table untouched.
func (s *Service) UpdateStatus(ctx context.Context, row int, status Status) (string, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("ledger update: %w", err)
	}
	if row < 1 || row > len(records) {
		return "", fmt.Errorf("%w: row %d", ErrRecordNotFound, row)
	}

	records[row-1].Status = status
	if err := s.store.Replace(ctx, records); err != nil {
		return "", fmt.Errorf("ledger update: %w", err)
	}
	return fmt.Sprintf("Marked row %d (%s) as %s.", row, records[row-1].Company, status), nil
}

// Choices derives the selectable labels the tracking UI offers for status
// updates.
func Choices(records []Record) []string {
	labels := make([]string, 0, len(records))
	for _, rec := range records {
		labels = append(labels, rec.Label())
	}
	return labels
}
