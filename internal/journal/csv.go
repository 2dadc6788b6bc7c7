package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

// Header is the header row of every monthly file.
const Header = "Date,Source,Currency,Amount,Type,Payee,Memo"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colDate    = 0
	colSource  = 1
	colCur     = 2
	colAmount  = 3
	colType    = 4
	colPayee   = 5
	colMemo    = 6
)

// ReadTransactions reads a monthly file written by WriteTransactions.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes the header and one row per transaction.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colSource] = t.Source.String()
	row[colCur] = t.Currency
	row[colAmount] = t.Amount
	row[colType] = t.Type
	row[colPayee] = t.Payee
	row[colMemo] = t.Memo
	return row
}

// UnmarshalTransaction converts a CSV row back to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.Transaction{
		Date:     date,
		Source:   model.ParseSource(record[colSource]),
		Currency: record[colCur],
		Amount:   record[colAmount],
		Type:     record[colType],
		Payee:    record[colPayee],
		Memo:     record[colMemo],
	}, nil
}
