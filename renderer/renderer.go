// Package renderer turns ledger aggregates into markdown documents. It
// holds no state; every function takes the data to render and returns the
// markdown string, leaving terminal styling to the caller.
package renderer

import (
	"fmt"

	"github.com/mzhou/ledger"
)

// amount renders a record amount signed by its kind: inflows gain a plus,
// outflows a minus.
func amount(r ledger.Record, currency string) string {
	if r.Kind() == ledger.Inflow {
		return "+" + r.Amount.Format(currency)
	}
	return "-" + r.Amount.Format(currency)
}

// index renders the display position of a record.
func index(i int) string { return fmt.Sprintf("%d", i) }
