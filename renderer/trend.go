package renderer

import (
	"bytes"
	"fmt"

	"github.com/mzhou/ledger"
	md "github.com/nao1215/markdown"
)

// Trend renders per-month inflow and outflow totals in chronological order.
func Trend(name string, rows []ledger.MonthlyFlow, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly trend for %s", name))

	if len(rows) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		month := row.Month
		if month == "" {
			month = "(undated)"
		}
		table = append(table, []string{
			month,
			row.Inflow.Format(currency),
			row.Outflow.Format(currency),
			row.Inflow.Sub(row.Outflow).Format(currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Inflow", "Outflow", "Net"},
		Rows:   table,
	})

	return doc.String()
}
