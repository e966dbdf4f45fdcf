package renderer

import (
	"bytes"
	"fmt"

	"github.com/mzhou/ledger"
	md "github.com/nao1215/markdown"
)

// Summary renders the inflow/outflow totals of an account.
func Summary(name string, s ledger.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", name))

	doc.Table(md.TableSet{
		Header: []string{"Side", "Total"},
		Rows: [][]string{
			{"Inflow", s.Inflow.Format(currency)},
			{"Outflow", s.Outflow.Format(currency)},
			{"Balance", s.Balance.Format(currency)},
		},
	})

	return doc.String()
}
