package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func txn(t time.Time, amount, payee string) model.Transaction {
	return model.NewTransaction(t, model.SourceN26, "EUR", amount, "Presentment", payee, "")
}

func TestWriteTransactions(t *testing.T) {
	txns := []model.Transaction{
		model.NewTransaction(date(2024, 1, 15), model.SourceN26, "EUR", "-4.20", "Presentment", "Coffee Bar", ""),
		model.NewTransaction(date(2024, 1, 20), model.SourceDKB, "EUR", "-75,00", "Lastschrift", "Stadtwerke München", "Abschlag, Februar"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))

	want := "Date,Source,Currency,Amount,Type,Payee,Memo\n" +
		"2024-01-15,N26,EUR,\"-4,20\",Presentment,Coffee Bar,\n" +
		"2024-01-20,DKB,EUR,\"-75,00\",Lastschrift,Stadtwerke München,\"Abschlag, Februar\"\n"
	assert.Equal(t, want, buf.String())
}

func TestReadTransactions(t *testing.T) {
	in := Header + "\n" +
		"2024-01-15,PayPal,USD,\"-19,99\",Express Checkout Payment,Valve Corp,3EF23456CD7890123\n"

	got, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.SourcePayPal, got[0].Source)
	assert.Equal(t, "-19,99", got[0].Amount)
	assert.Equal(t, "Valve Corp", got[0].Payee)
	assert.True(t, got[0].Date.Equal(date(2024, 1, 15)))
}

func TestReadTransactions_Empty(t *testing.T) {
	txns, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestUnmarshalTransaction_Errors(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"2024-01-15"})
	assert.ErrorContains(t, err, "expected 7 fields")

	_, err = UnmarshalTransaction([]string{"15.01.2024", "N26", "EUR", "1,00", "", "", ""})
	assert.ErrorContains(t, err, "parsing date")
}
