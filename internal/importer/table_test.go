package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	in := "\ufeff\"Date\";\"Payee\";\"Amount\"\n\"2024-01-01\";\"Shop\";\"-1,00\"\n\"2024-01-02\";\"Shop\"\n"
	tbl, err := ReadTable(strings.NewReader(in), ';')
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Payee", "Amount"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "-1,00", tbl.Value(tbl.Rows[0], "Amount"))
	assert.Equal(t, "", tbl.Value(tbl.Rows[1], "Amount"))
	assert.Equal(t, "", tbl.Value(tbl.Rows[0], "Memo"))
}

func TestReadTable_Empty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), ',')
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadTable_DuplicateColumnUsesFirst(t *testing.T) {
	tbl, err := ReadTable(strings.NewReader("a,b,a\n1,2,3\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, "1", tbl.Value(tbl.Rows[0], "a"))
}

func TestTable_Require(t *testing.T) {
	tbl, err := ReadTable(strings.NewReader("Date,Amount\n"), ',')
	require.NoError(t, err)

	assert.NoError(t, tbl.Require("Date", "Amount"))
	err = tbl.Require("Date", "Payee")
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), `"Payee"`)
}
