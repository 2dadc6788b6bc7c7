package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrNoHeader      = errors.New("no header row")
	ErrMissingColumn = errors.New("missing column")
)

// Table is a parsed export: a header and rows of equal width.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// ReadTable parses delimited text. A UTF-8 byte order mark is dropped and
// ragged rows are padded or truncated to the header width.
func ReadTable(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	t := &Table{
		Header: records[0],
		index:  make(map[string]int, len(records[0])),
	}
	for i, name := range t.Header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	width := len(t.Header)
	for _, rec := range records[1:] {
		row := make([]string, width)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Require checks that every named column exists.
func (t *Table) Require(names ...string) error {
	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			return fmt.Errorf("%w %q", ErrMissingColumn, n)
		}
	}
	return nil
}

// Value returns the cell of row in column name, or "" when there is no such column.
func (t *Table) Value(row []string, name string) string {
	i, ok := t.index[name]
	if !ok {
		return ""
	}
	return row[i]
}
