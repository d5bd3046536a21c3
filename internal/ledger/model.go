package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of an application.
type Status string

const (
	StatusApplied  Status = "Applied"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// ParseStatus validates a caller-supplied status string.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "applied":
		return StatusApplied, nil
	case "accepted":
		return StatusAccepted, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Record is one row of the application ledger. Row is assigned at append time,
// is 1-based, and doubles as the record's position in the persisted table.
type Record struct {
	Row       int       `json:"row"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	JobID     string    `json:"job_id"`
	Link      string    `json:"link"`
	Status    Status    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// Label renders the selector label shown by the tracking UI.
func (r Record) Label() string {
	return fmt.Sprintf("%d. %s — %s", r.Row, r.Company, r.Role)
}

// Entry is the caller-supplied part of a new record; row, status and
// timestamp are assigned by the ledger.
type Entry struct {
	Company string
	Role    string
	JobID   string
	Link    string
}
