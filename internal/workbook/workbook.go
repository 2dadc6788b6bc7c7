// Package workbook writes monthly buckets into one spreadsheet, a sheet per month.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bankcsv-dev/bankcsv/internal/journal"
)

const defaultSheet = "Sheet1"

// Workbook collects month sheets until Save.
type Workbook struct {
	f      *excelize.File
	path   string
	sheets int
}

// New creates an empty workbook that Save writes to path.
func New(path string) *Workbook {
	return &Workbook{f: excelize.NewFile(), path: path}
}

// AddBucket writes b to a sheet named after its month. Amounts that parse
// are stored as numbers so spreadsheet sums work; others stay text.
func (w *Workbook) AddBucket(b journal.Bucket) error {
	sheet := b.Month.String()
	if _, err := w.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("adding sheet %s: %w", sheet, err)
	}

	header := strings.Split(journal.Header, ",")
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header of %s: %w", sheet, err)
	}

	for i, t := range b.Transactions {
		row := make([]any, 0, len(header))
		for j, cell := range journal.MarshalTransaction(t) {
			if j == amountColumn {
				if d, err := journal.ParseAmount(cell); err == nil {
					row = append(row, d.InexactFloat64())
					continue
				}
			}
			row = append(row, cell)
		}
		if err := w.f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return fmt.Errorf("writing row %d of %s: %w", i+2, sheet, err)
		}
	}
	w.sheets++
	return nil
}

// amountColumn is the index of Amount in journal.Header.
const amountColumn = 3

// Save writes the workbook and releases it. Nothing is written when no
// bucket was added.
func (w *Workbook) Save() error {
	defer w.f.Close()

	if w.sheets == 0 {
		return nil
	}
	if err := w.f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if err := w.f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

// Path returns the destination path.
func (w *Workbook) Path() string {
	return w.path
}
