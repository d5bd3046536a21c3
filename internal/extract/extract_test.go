package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pdfBuilder assembles a minimal single-font PDF with a correct xref table.
type pdfBuilder struct {
	buf     bytes.Buffer
	offsets []int
}

func newPDFBuilder() *pdfBuilder {
	b := &pdfBuilder{offsets: []int{0}}
	b.buf.WriteString("%PDF-1.4\n")
	return b
}

func (b *pdfBuilder) writeObject(body string) {
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", len(b.offsets)-1, body)
}

func (b *pdfBuilder) finish(trailerExtra string) []byte {
	xrefOffset := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(b.offsets))
	b.buf.WriteString("0000000000 65535 f \n")
	for _, off := range b.offsets[1:] {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n",
		len(b.offsets), trailerExtra, xrefOffset)
	return b.buf.Bytes()
}

func contentStream(text string) string {
	return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
}

// buildPDF produces a parseable PDF with one page per element of pageTexts.
func buildPDF(pageTexts ...string) []byte {
	b := newPDFBuilder()

	kids := make([]string, 0, len(pageTexts))
	for i := range pageTexts {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	b.writeObject("<< /Type /Catalog /Pages 2 0 R >>")
	b.writeObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	b.writeObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i, text := range pageTexts {
		b.writeObject(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		stream := contentStream(text)
		b.writeObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	return b.finish("")
}

// buildEncryptedPDF produces a PDF whose trailer references a standard
// security handler with junk owner/user hashes, so no password can open it.
func buildEncryptedPDF() []byte {
	b := newPDFBuilder()
	b.writeObject("<< /Type /Catalog /Pages 2 0 R >>")
	b.writeObject("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	b.writeObject("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	b.writeObject("<< /Filter /Standard /V 1 /R 2 /Length 40 /P -44 " +
		"/O (0123456789abcdef0123456789abcdef) /U (fedcba9876543210fedcba9876543210) >>")
	return b.finish(" /Encrypt 4 0 R")
}

func writeTempPDF(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write test pdf: %v", err)
	}
	return path
}

func TestTextExtractsSinglePage(t *testing.T) {
	path := writeTempPDF(t, buildPDF("Jane Doe, 5 years backend experience"))

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if got != "Jane Doe, 5 years backend experience" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextConcatenatesPagesInOrder(t *testing.T) {
	path := writeTempPDF(t, buildPDF("First page of the resume. ", "Second page of the resume."))

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	first := strings.Index(got, "First page")
	second := strings.Index(got, "Second page")
	if first == -1 || second == -1 {
		t.Fatalf("missing page text: %q", got)
	}
	if first > second {
		t.Fatalf("pages out of order: %q", got)
	}
}

func TestTextNormalizesWhitespace(t *testing.T) {
	path := writeTempPDF(t, buildPDF("Jane   Doe\t backend   engineer"))

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if strings.Contains(got, "  ") || strings.Contains(got, "\t") {
		t.Fatalf("whitespace not normalized: %q", got)
	}
}

func TestTextUnreadableInputs(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not a pdf", data: []byte("plain text, definitely not a pdf")},
		{name: "truncated", data: buildPDF("Jane Doe")[:40]},
		{name: "empty file", data: nil},
		{name: "encrypted", data: buildEncryptedPDF()},
		{name: "no text layer", data: buildPDF("")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempPDF(t, tt.data)
			if _, err := Text(path); !errors.Is(err, ErrUnreadable) {
				t.Fatalf("expected ErrUnreadable, got %v", err)
			}
		})
	}
}

func TestTextMissingFile(t *testing.T) {
	if _, err := Text(filepath.Join(t.TempDir(), "nope.pdf")); !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestTextDoesNotMutateInput(t *testing.T) {
	data := buildPDF("Jane Doe")
	path := writeTempPDF(t, data)

	if _, err := Text(path); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read pdf: %v", err)
	}
	if !bytes.Equal(data, after) {
		t.Fatal("input file was mutated")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  \n\t ", want: ""},
		{in: "a  b\nc", want: "a b c"},
		{in: " padded ", want: "padded"},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Fatalf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
