package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmpty is returned when a source has no header row.
var ErrEmpty = errors.New("table: source has no header row")

// Table is a decoded tabular source. Rows are aligned with Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of the first column named name, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Read decodes r according to f.
func Read(r io.Reader, f Format) (*Table, error) {
	switch f {
	case CSV:
		return ReadCSV(r, ',')
	case TSV:
		return ReadCSV(r, '\t')
	case XLSX:
		return ReadXLSX(r, "")
	default:
		return nil, fmt.Errorf("table: unsupported format %s", f)
	}
}

// ReadCSV decodes delimiter-separated text. Every data row must carry
// exactly as many fields as the header.
func ReadCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	t := &Table{Header: normalizeHeader(header)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// ReadXLSX decodes the named sheet of a workbook, or the first sheet when
// sheet is empty. Blank rows are skipped, short rows are padded and long rows
// are trimmed to the header width.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmpty
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{Header: normalizeHeader(rows[0])}
	width := len(t.Header)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		switch {
		case len(row) < width:
			row = append(row, make([]string, width-len(row))...)
		case len(row) > width:
			row = row[:width]
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
