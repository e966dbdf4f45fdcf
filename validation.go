package ledger

import (
	"fmt"
	"strings"
	"time"
)

// CheckRecord reports advisory problems with a record before it enters the
// store. The store itself never calls it: decode and merge must accept what
// other devices produced, and upstream input validation is not guaranteed.
// Callers that want the stricter behaviour (the CLI `add` command does)
// check explicitly.
func CheckRecord(r Record) error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", r.Date)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("negative amount %s", r.Amount)
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("empty category")
	}
	return nil
}
