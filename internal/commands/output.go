package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/bankcsv-dev/bankcsv/internal/journal"
	"github.com/bankcsv-dev/bankcsv/internal/model"
)

var (
	debitColor  = color.New(color.FgRed)
	creditColor = color.New(color.FgGreen)
)

// printTransaction writes the console line for an emitted transaction, with
// the amount coloured by sign.
func printTransaction(w io.Writer, t model.Transaction) {
	c := creditColor
	if strings.HasPrefix(t.Amount, "-") {
		c = debitColor
	}
	fmt.Fprintln(w, t.Line(c.Sprint(t.Amount)))
}

// written is one monthly file produced by a merge.
type written struct {
	path   string
	bucket journal.Bucket
}

// printSummary renders one table row per written file with its row count and
// the sum of its amounts.
func printSummary(w io.Writer, files []written) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Month", "File", "Rows", "Total"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	rows := 0
	grand := decimal.Zero
	unparsed := 0
	for _, f := range files {
		total, skipped := f.bucket.Total()
		rows += len(f.bucket.Transactions)
		grand = grand.Add(total)
		unparsed += skipped

		t.AppendRow(table.Row{
			f.bucket.Month.String(),
			filepath.Base(f.path),
			len(f.bucket.Transactions),
			formatTotal(total, skipped),
		})
	}
	t.AppendFooter(table.Row{"", "", rows, formatTotal(grand, unparsed)})
	t.Render()
}

func formatTotal(d decimal.Decimal, skipped int) string {
	s := strings.ReplaceAll(d.StringFixed(2), ".", ",")
	if skipped > 0 {
		s += fmt.Sprintf(" (%d unparsed)", skipped)
	}
	return s
}
