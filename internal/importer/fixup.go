package importer

import (
	"strings"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

// Row is one projected export row before normalization. Values are raw cells.
type Row struct {
	Date     string
	Currency string
	Amount   string
	Type     string
	Payee    string
	Memo     string
}

// Target is the currency being extracted and the accounts' home currency.
type Target struct {
	Currency string
	Home     string
}

// Fixup adjusts a row for its source after generic extraction. It returns
// false to drop the row.
type Fixup func(row *Row, target Target) bool

// Registry maps sources to their fixup.
type Registry struct {
	fixups map[model.Source]Fixup
}

// NewRegistry creates an empty fixup registry.
func NewRegistry() *Registry {
	return &Registry{fixups: make(map[model.Source]Fixup)}
}

// Register adds a fixup. Panics on duplicate source.
func (r *Registry) Register(src model.Source, f Fixup) {
	if _, ok := r.fixups[src]; ok {
		panic("duplicate fixup for source: " + src.String())
	}
	r.fixups[src] = f
}

// Get returns the fixup for src, or nil.
func (r *Registry) Get(src model.Source) Fixup {
	return r.fixups[src]
}

// DefaultRegistry returns a registry with the built-in fixups.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(model.SourceN26, FixN26)
	r.Register(model.SourceDKB, FixDKB)
	return r
}

// presentment is an N26 card payment. Newer exports list it unsigned.
const presentment = "Presentment"

// FixN26 makes Presentment amounts negative.
func FixN26(row *Row, _ Target) bool {
	if model.StripQuotes(row.Type) == presentment {
		row.Amount = "-" + strings.TrimPrefix(model.StripQuotes(row.Amount), "-")
	}
	return true
}

// FixDKB derives the currency DKB exports lack. Home currency rows keep their
// amount; foreign rows take the original amount from the memo and keep the
// sign of the booked amount.
func FixDKB(row *Row, target Target) bool {
	if target.Currency == target.Home {
		row.Currency = target.Home
		return true
	}

	amount, ok := ExtractMemoAmount(target.Currency, row.Memo)
	if !ok {
		return false
	}
	if strings.Contains(row.Amount, "-") {
		amount = "-" + amount
	}
	row.Currency = target.Currency
	row.Amount = amount
	return true
}

// memoAmountKeywords precede the original amount in DKB card memos.
// Most recent export revision first.
var memoAmountKeywords = []string{
	"Ursprünglicher Betrag ",
	"Original ",
}

// ExtractMemoAmount finds the original foreign amount in a DKB memo such as
// "Debitk.44 Original 6,99 BRL 1 Euro=5,29545460 BRL". The amount is the text
// between the keyword and the first occurrence of the currency code.
func ExtractMemoAmount(currency, memo string) (string, bool) {
	start, keyword := -1, ""
	for _, kw := range memoAmountKeywords {
		if i := strings.Index(memo, kw); i >= 0 {
			start, keyword = i, kw
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := strings.Index(memo, currency)
	if end <= start {
		return "", false
	}

	amountStart := start + len(keyword)
	if end < amountStart {
		return "", false
	}
	return strings.TrimSpace(memo[amountStart:end]), true
}
