package renderer

import (
	"bytes"
	"fmt"

	"github.com/mzhou/ledger"
	md "github.com/nao1215/markdown"
)

// Breakdown renders per-category outflow totals, largest first.
func Breakdown(name string, rows []ledger.CategoryTotal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spending by category for %s", name))

	if len(rows) == 0 {
		doc.PlainText("No outflows recorded.")
		return doc.String()
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{row.Category, row.Total.Format(currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total"},
		Rows:   table,
	})

	return doc.String()
}
