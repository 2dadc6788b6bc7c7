// Package schema identifies bank exports by their leading header columns and
// holds the extraction plan for every known export revision.
package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

// NumFingerprintColumns is how many leading header columns identify a layout.
const NumFingerprintColumns = 5

// HomeCurrency is the account currency of the supported banks.
const HomeCurrency = "EUR"

// ErrUnknownFormat is returned when no fingerprint matches a header.
var ErrUnknownFormat = errors.New("unknown CSV format")

// UnknownFormatError carries the columns that failed to match.
type UnknownFormatError struct {
	Columns []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s. These are the first columns: %q", ErrUnknownFormat, e.Columns)
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// Fingerprint is the exact, ordered list of a layout's first header columns.
type Fingerprint [NumFingerprintColumns]string

// Op is a column filter comparison.
type Op int

const (
	Equal Op = iota
	NotEqual
)

// Filter keeps rows whose Column compares to Value under Op.
type Filter struct {
	Column string
	Op     Op
	Value  string
}

// Keep reports whether a cell value passes the filter.
func (f Filter) Keep(value string) bool {
	if f.Op == NotEqual {
		return value != f.Value
	}
	return value == f.Value
}

// Plan describes how to project one export layout onto a transaction.
type Plan struct {
	Label       string
	Source      model.Source
	Fingerprint Fingerprint

	DateColumn     string
	CurrencyColumn string // empty: currency is derived per row
	AmountColumn   string
	// ForeignAmountColumn replaces AmountColumn when the target currency is
	// not the home currency.
	ForeignAmountColumn string
	TypeColumn          string
	PayeeColumn         string
	MemoColumn          string

	// EmptyCurrencyIsHome accepts rows without a currency as home currency rows.
	EmptyCurrencyIsHome bool
	Filters             []Filter
}

// DerivesCurrency reports whether the layout lacks a currency column.
func (p Plan) DerivesCurrency() bool {
	return p.CurrencyColumn == ""
}

// Amount returns the amount column to read. foreign is true when the target
// currency is not the home currency.
func (p Plan) Amount(foreign bool) string {
	if foreign && p.ForeignAmountColumn != "" {
		return p.ForeignAmountColumn
	}
	return p.AmountColumn
}

// Columns returns the columns read for a target currency, in output order
// (date, currency, amount, type, payee, memo). Currency is omitted when
// the layout has none.
func (p Plan) Columns(foreign bool) []string {
	cols := []string{p.DateColumn}
	if !p.DerivesCurrency() {
		cols = append(cols, p.CurrencyColumn)
	}
	cols = append(cols, p.Amount(foreign), p.TypeColumn, p.PayeeColumn, p.MemoColumn)
	for _, f := range p.Filters {
		if !slices.Contains(cols, f.Column) {
			cols = append(cols, f.Column)
		}
	}
	return cols
}

// Match returns the plan whose fingerprint equals the first columns of header.
func Match(header []string) (Plan, error) {
	if len(header) < NumFingerprintColumns {
		return Plan{}, &UnknownFormatError{Columns: slices.Clone(header)}
	}

	var fp Fingerprint
	copy(fp[:], header[:NumFingerprintColumns])
	for _, p := range plans {
		if p.Fingerprint == fp {
			return p, nil
		}
	}
	return Plan{}, &UnknownFormatError{Columns: fp[:]}
}

// Plans returns a copy of the fingerprint table in match order.
func Plans() []Plan {
	return slices.Clone(plans)
}
