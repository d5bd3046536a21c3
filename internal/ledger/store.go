package ledger

import "context"

// Store persists the full application table. Replace must be atomic: a failed
// write leaves the previously persisted table intact and parsable.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
	Replace(ctx context.Context, records []Record) error
}
