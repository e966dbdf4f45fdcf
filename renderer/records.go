package renderer

import (
	"bytes"
	"fmt"

	"github.com/mzhou/ledger"
	md "github.com/nao1215/markdown"
)

// Records renders a record sequence as a markdown table. The first column
// is the position in the sequence, which is what 'rm -i' expects.
func Records(title string, records []ledger.Record, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(records) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			index(i),
			r.Date,
			r.Category,
			amount(r, currency),
			r.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Category", "Amount", "Note"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("%d record(s).", len(records)))

	return doc.String()
}
