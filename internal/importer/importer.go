// Package importer turns bank exports into normalized transactions.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bankcsv-dev/bankcsv/internal/model"
	"github.com/bankcsv-dev/bankcsv/internal/schema"
	"github.com/bankcsv-dev/bankcsv/internal/sniffer"
)

// Options control extraction.
type Options struct {
	// Currency is the target currency, any case.
	Currency string
	// SkipInvalidDates drops rows with unparseable dates instead of failing.
	SkipInvalidDates bool
}

// Importer runs the per-file pipeline: sniff, strip preamble, parse, match
// and extract.
type Importer struct {
	target   Target
	skipDate bool
	fixups   *Registry
	logger   *log.Logger
}

// Result describes one imported file.
type Result struct {
	Path         string
	Plan         schema.Plan
	Rows         int // data rows in the table
	Transactions []model.Transaction
}

// New creates an Importer with the default fixups.
func New(opts Options, logger *log.Logger) *Importer {
	return &Importer{
		target:   Target{Currency: strings.ToUpper(opts.Currency), Home: schema.HomeCurrency},
		skipDate: opts.SkipInvalidDates,
		fixups:   DefaultRegistry(),
		logger:   logger,
	}
}

// ImportFile reads and extracts one export.
func (im *Importer) ImportFile(path string) (*Result, error) {
	d, err := sniffer.Detect(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := im.Import(f, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// Import extracts transactions from r, whose dialect is already known.
func (im *Importer) Import(r io.Reader, d sniffer.Dialect) (*Result, error) {
	if d.HasPreamble() {
		im.logger.Debug("stripping preamble", "marker", d.Marker)
		var buf bytes.Buffer
		if err := sniffer.StripPreamble(r, &buf); err != nil {
			return nil, fmt.Errorf("stripping preamble: %w", err)
		}
		r = &buf
	}

	tbl, err := ReadTable(r, d.Delimiter)
	if err != nil {
		return nil, err
	}

	plan, err := schema.Match(tbl.Header)
	if err != nil {
		return nil, err
	}
	im.logger.Debug("matched export format", "format", plan.Label, "source", plan.Source)

	txns, err := im.Extract(tbl, plan)
	if err != nil {
		return nil, err
	}
	return &Result{Plan: plan, Rows: len(tbl.Rows), Transactions: txns}, nil
}

// Extract projects tbl through plan, filters by the target currency and the
// plan's column filters, applies the source fixup and parses dates.
func (im *Importer) Extract(tbl *Table, plan schema.Plan) ([]model.Transaction, error) {
	foreign := im.target.Currency != im.target.Home
	if err := tbl.Require(plan.Columns(foreign)...); err != nil {
		return nil, err
	}

	fixup := im.fixups.Get(plan.Source)
	amountCol := plan.Amount(foreign)

	var txns []model.Transaction
	for i, rec := range tbl.Rows {
		if !im.keep(tbl, plan, rec) {
			continue
		}

		row := Row{
			Date:   tbl.Value(rec, plan.DateColumn),
			Amount: tbl.Value(rec, amountCol),
			Type:   tbl.Value(rec, plan.TypeColumn),
			Payee:  tbl.Value(rec, plan.PayeeColumn),
			Memo:   tbl.Value(rec, plan.MemoColumn),
		}
		if !plan.DerivesCurrency() {
			row.Currency = tbl.Value(rec, plan.CurrencyColumn)
		}

		if fixup != nil && !fixup(&row, im.target) {
			im.logger.Debug("dropping row", "row", i+2, "source", plan.Source, "memo", row.Memo)
			continue
		}

		date, err := ParseDate(row.Date)
		if err != nil {
			if im.skipDate && errors.Is(err, ErrInvalidDateFormat) {
				im.logger.Warn("dropping row", "row", i+2, "err", err)
				continue
			}
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		txns = append(txns, model.NewTransaction(date, plan.Source, row.Currency, row.Amount, row.Type, row.Payee, row.Memo))
	}
	return txns, nil
}

func (im *Importer) keep(tbl *Table, plan schema.Plan, rec []string) bool {
	if !plan.DerivesCurrency() {
		cur := strings.ToUpper(model.StripQuotes(tbl.Value(rec, plan.CurrencyColumn)))
		if cur == "" && plan.EmptyCurrencyIsHome {
			cur = im.target.Home
		}
		if cur != im.target.Currency {
			return false
		}
	}
	for _, f := range plan.Filters {
		if !f.Keep(model.StripQuotes(tbl.Value(rec, f.Column))) {
			return false
		}
	}
	return true
}

// FileInfo describes a CSV file found in an input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the CSV files directly inside dir, sorted by name.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
