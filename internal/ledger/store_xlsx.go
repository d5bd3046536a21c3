package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Applications"
	timeLayout = "2006-01-02 15:04:05"
)

// header thru Status is the fixed layout the tracking UI renders; Date is
// storage-only.
var header = []string{"#", "Company", "Role", "Job ID", "Link", "Status", "Date"}

// XLSXStore persists the application table as a single-sheet workbook. Rows
// are kept in append order and the first column holds the row ordinal.
type XLSXStore struct {
	Path string
}

// NewXLSXStore constructs a store writing to path. The file is created on the
// first Replace.
func NewXLSXStore(path string) *XLSXStore {
	return &XLSXStore{Path: path}
}

// Load reads the full table. A missing file is an empty ledger, not an error.
func (s *XLSXStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", s.Path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: missing sheet %s: %v", ErrCorrupt, sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		rec, err := recordFromCells(cells)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorrupt, i+1, err)
		}
		if rec.Row != i+1 {
			return nil, fmt.Errorf("%w: row %d carries ordinal %d", ErrCorrupt, i+1, rec.Row)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Replace writes the full table to a temporary workbook in the same directory
// and renames it over the previous one, so a failed write never leaves the
// ledger unparsable.
func (s *XLSXStore) Replace(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	for i, rec := range records {
		cells := []interface{}{
			strconv.Itoa(rec.Row),
			rec.Company,
			rec.Role,
			rec.JobID,
			rec.Link,
			string(rec.Status),
			rec.AppliedAt.UTC().Format(timeLayout),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	// SaveAs derives the workbook format from the file extension, so the
	// temporary file must end in .xlsx.
	tmp := filepath.Join(dir, "."+filepath.Base(s.Path)+".tmp-"+uuid.NewString()+".xlsx")
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

func recordFromCells(cells []string) (Record, error) {
	// GetRows drops trailing empty cells, so pad back to the full width.
	padded := make([]string, len(header))
	copy(padded, cells)

	row, err := strconv.Atoi(strings.TrimSpace(padded[0]))
	if err != nil {
		return Record{}, fmt.Errorf("bad row ordinal %q", padded[0])
	}

	status, err := ParseStatus(padded[5])
	if err != nil {
		return Record{}, err
	}

	var appliedAt time.Time
	if raw := strings.TrimSpace(padded[6]); raw != "" {
		parsed, err := time.Parse(timeLayout, raw)
		if err != nil {
			return Record{}, fmt.Errorf("bad date %q", raw)
		}
		appliedAt = parsed.UTC()
	}

	return Record{
		Row:       row,
		Company:   padded[1],
		Role:      padded[2],
		JobID:     padded[3],
		Link:      padded[4],
		Status:    status,
		AppliedAt: appliedAt,
	}, nil
}

var _ Store = (*XLSXStore)(nil)
