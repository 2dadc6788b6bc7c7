package model

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// DefaultCurrency is used when a row carries no currency at all.
const DefaultCurrency = "EUR"

// Transaction is one normalized output row.
//
// Memo and Source are display fields: they take no part in ordering or equality.
type Transaction struct {
	Date     time.Time
	Source   Source
	Currency string
	Amount   string // decimal comma, e.g. "-12,50"
	Type     string
	Payee    string
	Memo     string
}

// NewTransaction builds a Transaction from raw field values. One layer of
// surrounding double quotes is stripped from every text field, the amount
// uses a comma as decimal separator and an empty currency becomes EUR.
func NewTransaction(date time.Time, src Source, currency, amount, txnType, payee, memo string) Transaction {
	currency = StripQuotes(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	y, m, d := date.Date()
	return Transaction{
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Source:   src,
		Currency: currency,
		Amount:   strings.ReplaceAll(StripQuotes(amount), ".", ","),
		Type:     StripQuotes(txnType),
		Payee:    StripQuotes(payee),
		Memo:     StripQuotes(memo),
	}
}

// Compare orders transactions by date, currency, amount, type and payee.
// Amounts compare as strings, not numbers.
func (t Transaction) Compare(o Transaction) int {
	if c := t.Date.Compare(o.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Currency, o.Currency); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Amount, o.Amount); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Type, o.Type); c != 0 {
		return c
	}
	return cmp.Compare(t.Payee, o.Payee)
}

// String renders the one-line console summary.
func (t Transaction) String() string {
	return t.Line(t.Amount)
}

// Line renders the console summary with amount in place of t.Amount, so
// callers can decorate it.
func (t Transaction) Line(amount string) string {
	return fmt.Sprintf("%s [%s] %s %s paid to %s (%s)",
		t.Date.Format("2006-01-02"), t.Source, t.Currency, amount, t.Payee, t.Type)
}

// StripQuotes removes at most one leading and one trailing double quote.
func StripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
