// Package tabular reads uploaded CSV and XLSX files into a uniform table with
// case- and whitespace-insensitive column access.
package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

// Table is a parsed upload: a header row plus data rows.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// Row is a single data row with header-based access.
type Row struct {
	table *Table
	cells []string
	// Number is the 1-based position within the data rows (header excluded).
	Number int
}

// AllowedExtensions lists the upload types the parser accepts.
var AllowedExtensions = []string{".csv", ".xlsx", ".xls"}

// Parse reads an uploaded file, choosing the decoder from the file extension.
func Parse(r io.Reader, filename string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx", ".xls":
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

// ParseCSV decodes a delimited file. A UTF-8 BOM is stripped and ragged rows
// are tolerated.
func ParseCSV(r io.Reader) (*Table, error) {
	br := stripUTF8BOM(bufio.NewReader(r))

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedFile, err)
	}

	return fromRecords(records)
}

// ParseXLSX decodes the first sheet of a spreadsheet.
func ParseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrMalformedFile)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedFile, err)
	}

	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", apperrors.ErrMalformedFile)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeKey(name)
		if key == "" {
			continue
		}
		// First occurrence wins on duplicate headers
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	return &Table{header: header, index: index, rows: records[1:]}, nil
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

// normalizeKey lowercases a header name and collapses surrounding and inner
// whitespace, so " Guardian  Name " matches "guardian name".
func normalizeKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// MissingColumns returns the required column names absent from the header.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := t.index[normalizeKey(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// HasColumn reports whether the header contains the column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[normalizeKey(name)]
	return ok
}

// Header returns the raw header row.
func (t *Table) Header() []string {
	return t.header
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Row returns the i-th data row (0-based).
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i], Number: i + 1}
}

// Get returns the trimmed cell under the named column, or empty string when
// the column is absent or the row is shorter than the header.
func (r Row) Get(column string) string {
	idx, ok := r.table.index[normalizeKey(column)]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}
