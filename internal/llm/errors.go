package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProvider indicates the model identifier is not in the
	// enumerated provider set, or its vendor is not configured.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrTimeout indicates the provider call exceeded its deadline. The
	// caller may retry; the gateway never retries on its own.
	ErrTimeout = errors.New("provider timeout")
)

// ProviderError normalizes vendor-specific API failures so callers need not
// special-case vendors.
type ProviderError struct {
	Vendor     Vendor
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider error (HTTP %d): %s", e.Vendor, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s provider error: %s", e.Vendor, e.Message)
}
