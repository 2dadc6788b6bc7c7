package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

func TestExtractMemoAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		memo     string
		want     string
		ok       bool
	}{
		{
			name:     "card payment",
			currency: "BRL",
			memo:     "2023-12-12      Debitk.44 Original 6,99 BRL 1 Euro=5,29545460 BRL VISA Debit",
			want:     "6,99",
			ok:       true,
		},
		{
			name:     "newer wording",
			currency: "USD",
			memo:     "2024-01-24 Debitk.44 Ursprünglicher Betrag 80,00 USD Kurs 1,0850",
			want:     "80,00",
			ok:       true,
		},
		{
			name:     "no keyword",
			currency: "BRL",
			memo:     "Nothing here",
		},
		{
			name:     "currency missing",
			currency: "USD",
			memo:     "Debitk.44 Original 6,99 BRL",
		},
		{
			name:     "currency before keyword",
			currency: "BRL",
			memo:     "BRL card Original 6,99",
		},
		{
			name:     "currency inside keyword",
			currency: "rig",
			memo:     "Debitk.44 Original 6,99 BRL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMemoAmount(tt.currency, tt.memo)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixN26(t *testing.T) {
	target := Target{Currency: "EUR", Home: "EUR"}

	row := Row{Type: "Presentment", Amount: "4.20"}
	require.True(t, FixN26(&row, target))
	assert.Equal(t, "-4.20", row.Amount)

	// Already negative amounts keep a single minus.
	row = Row{Type: `"Presentment"`, Amount: `"-4.20"`}
	require.True(t, FixN26(&row, target))
	assert.Equal(t, "-4.20", row.Amount)

	row = Row{Type: "Income", Amount: "2500.00"}
	require.True(t, FixN26(&row, target))
	assert.Equal(t, "2500.00", row.Amount)
}

func TestFixDKB_HomeCurrency(t *testing.T) {
	row := Row{Amount: "-75,00", Memo: "Abschlag"}
	require.True(t, FixDKB(&row, Target{Currency: "EUR", Home: "EUR"}))
	assert.Equal(t, "EUR", row.Currency)
	assert.Equal(t, "-75,00", row.Amount)
}

func TestFixDKB_ForeignCurrency(t *testing.T) {
	target := Target{Currency: "BRL", Home: "EUR"}

	row := Row{Amount: "-1,32", Memo: "Debitk.44 Original 6,99 BRL 1 Euro=5,29545460 BRL"}
	require.True(t, FixDKB(&row, target))
	assert.Equal(t, "BRL", row.Currency)
	assert.Equal(t, "-6,99", row.Amount)

	refund := Row{Amount: "1,32", Memo: "Debitk.44 Original 6,99 BRL 1 Euro=5,29545460 BRL"}
	require.True(t, FixDKB(&refund, target))
	assert.Equal(t, "6,99", refund.Amount)

	plain := Row{Amount: "-75,00", Memo: "Abschlag Strom"}
	assert.False(t, FixDKB(&plain, target))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get(model.SourceN26))
	assert.NotNil(t, r.Get(model.SourceDKB))
	assert.Nil(t, r.Get(model.SourcePayPal))

	assert.Panics(t, func() {
		r.Register(model.SourceN26, FixN26)
	})
}
