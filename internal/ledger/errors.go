package ledger

import "errors"

var (
	// ErrRecordNotFound indicates a status update referenced a row number
	// that does not exist in the table.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidStatus indicates a status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrCorrupt indicates the persisted table no longer satisfies the
	// row-number-is-ordinal identity and must not be written through.
	ErrCorrupt = errors.New("ledger file corrupt")
)
