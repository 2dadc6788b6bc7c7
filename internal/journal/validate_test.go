package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcsv-dev/bankcsv/internal/model"
	"github.com/bankcsv-dev/bankcsv/internal/period"
)

var january = period.Month{Year: 2024, Month: time.January}

func TestValidateBucket_Valid(t *testing.T) {
	b := Bucket{Month: january, Transactions: []model.Transaction{
		txn(date(2024, 1, 5), "-900.00", "Rent Co"),
		txn(date(2024, 1, 15), "-4.20", "Coffee Bar"),
	}}
	assert.Empty(t, ValidateBucket(b))
}

func TestValidateBucket_WrongMonth(t *testing.T) {
	b := Bucket{Month: january, Transactions: []model.Transaction{
		txn(date(2024, 2, 1), "-1.00", "Kiosk"),
	}}
	errs := ValidateBucket(b)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Row)
	assert.Contains(t, errs[0].Error(), "2024-02-01 not in 2024-01")
}

func TestValidateBucket_Duplicate(t *testing.T) {
	a := txn(date(2024, 1, 15), "-4.20", "Coffee Bar")
	b := a
	b.Memo = "other terminal"

	errs := ValidateBucket(Bucket{Month: january, Transactions: []model.Transaction{a, b}})
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Row)
	assert.Contains(t, errs[0].Error(), "duplicate")
}

func TestValidateBucket_OutOfOrder(t *testing.T) {
	errs := ValidateBucket(Bucket{Month: january, Transactions: []model.Transaction{
		txn(date(2024, 1, 15), "-4.20", "Coffee Bar"),
		txn(date(2024, 1, 5), "-900.00", "Rent Co"),
	}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "out of order")
}
