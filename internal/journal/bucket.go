package journal

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankcsv-dev/bankcsv/internal/model"
	"github.com/bankcsv-dev/bankcsv/internal/period"
)

// Bucket holds the transactions of one calendar month.
type Bucket struct {
	Month        period.Month
	Transactions []model.Transaction
}

// Total sums the bucket's amounts. Amounts that do not parse as decimals
// are counted in skipped and left out of the sum.
func (b Bucket) Total() (total decimal.Decimal, skipped int) {
	for _, t := range b.Transactions {
		d, err := ParseAmount(t.Amount)
		if err != nil {
			skipped++
			continue
		}
		total = total.Add(d)
	}
	return total, skipped
}

// BucketByMonth groups txns by calendar month. Buckets are ascending by
// month and rows keep their input order.
func BucketByMonth(txns []model.Transaction) []Bucket {
	var buckets []Bucket
	for _, t := range txns {
		m := period.Of(t.Date)
		i := slices.IndexFunc(buckets, func(b Bucket) bool { return b.Month == m })
		if i < 0 {
			buckets = append(buckets, Bucket{Month: m})
			i = len(buckets) - 1
		}
		buckets[i].Transactions = append(buckets[i].Transactions, t)
	}
	slices.SortStableFunc(buckets, func(a, b Bucket) int { return a.Month.Compare(b.Month) })
	return buckets
}

// Filter returns the buckets whose month lies in r.
func Filter(buckets []Bucket, r period.Range) []Bucket {
	var out []Bucket
	for _, b := range buckets {
		if r.Includes(b.Month) {
			out = append(out, b)
		}
	}
	return out
}

// ParseAmount reads a decimal-comma amount such as "-12,50".
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
