package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable indicates the resume could not be converted to text: the file
// is corrupt, encrypted, or carries no extractable text layer.
var ErrUnreadable = errors.New("unreadable document")

// Text extracts plain text from the PDF at path, pages concatenated in order
// and whitespace-normalized. The input file is never mutated; cleanup of
// temporary uploads is the caller's responsibility.
func Text(path string) (text string, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, readErr)
	}
	return FromBytes(data)
}

// FromBytes extracts plain text from an in-memory PDF payload.
func FromBytes(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of returning
	// an error, so the unreadable contract has to hold through a recover.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	normalized := normalize(buf.String())
	if normalized == "" {
		return "", fmt.Errorf("%w: no extractable text layer", ErrUnreadable)
	}
	return normalized, nil
}

// normalize collapses whitespace runs to single spaces and trims the result.
func normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
