// Package auditlog appends one CSV row per processed input or written file.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Status is the outcome recorded for a file.
type Status string

const (
	StatusImported Status = "imported"
	StatusSkipped  Status = "skipped"
	StatusWritten  Status = "written"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time
	File      string
	Format    string // export layout of an input
	Currency  string
	Status    Status
	Rows      int // rows read for inputs, rows written for outputs
	Kept      int // inputs only; left blank for outputs
	Detail    string
}

// Header is the CSV header of the audit log.
const Header = "timestamp,file,format,currency,status,rows,kept,detail"

const (
	numFields    = 8
	colTimestamp = 0
	colFile      = 1
	colFormat    = 2
	colCurrency  = 3
	colStatus    = 4
	colRows      = 5
	colKept      = 6
	colDetail    = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colFormat] = e.Format
	row[colCurrency] = e.Currency
	row[colStatus] = string(e.Status)
	row[colRows] = strconv.Itoa(e.Rows)
	if e.Status != StatusWritten {
		row[colKept] = strconv.Itoa(e.Kept)
	}
	row[colDetail] = e.Detail
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows %q: %w", record[colRows], err)
	}
	var kept int
	if record[colKept] != "" {
		kept, err = strconv.Atoi(record[colKept])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing kept %q: %w", record[colKept], err)
		}
	}

	return Entry{
		Timestamp: ts,
		File:      record[colFile],
		Format:    record[colFormat],
		Currency:  record[colCurrency],
		Status:    Status(record[colStatus]),
		Rows:      rows,
		Kept:      kept,
		Detail:    record[colDetail],
	}, nil
}

// Append writes entries to the log at path, creating the file, its
// directory and the header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating audit log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries of the log at path, or nil when it does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
