// Package ledger accumulates transactions in their total order.
package ledger

import (
	"slices"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

// Set is an ordered set of transactions. Transactions that compare equal are
// stored once; the first one added wins.
type Set struct {
	txns []model.Transaction
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add inserts t at its sorted position. It reports false when an equal
// transaction is already present.
func (s *Set) Add(t model.Transaction) bool {
	i, found := slices.BinarySearchFunc(s.txns, t, model.Transaction.Compare)
	if found {
		return false
	}
	s.txns = slices.Insert(s.txns, i, t)
	return true
}

// AddAll inserts every transaction and returns how many were new.
func (s *Set) AddAll(txns []model.Transaction) int {
	added := 0
	for _, t := range txns {
		if s.Add(t) {
			added++
		}
	}
	return added
}

// Len returns the number of distinct transactions.
func (s *Set) Len() int {
	return len(s.txns)
}

// All returns the transactions in ascending order.
func (s *Set) All() []model.Transaction {
	return slices.Clone(s.txns)
}
