package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
	"github.com/mzhou/ledger/renderer"
)

type breakdownCmd struct {
	name     string
	password string
	month    string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display outflow totals per category" }
func (*breakdownCmd) Usage() string {
	return `lgr breakdown [-u <name>] -p <password> [-m <YYYY-MM>]

  Totals the account's outflows per category, largest first. Inflows are
  excluded.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.StringVar(&c.month, "m", "", "Keep records of this month, e.g. 2024-01.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	s, err := login(l, c.name, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	records := ledger.Filter{Month: c.month}.Apply(s.Records())
	printMarkdown(renderer.Breakdown(s.Name(), ledger.CategoryBreakdown(records), *currency))
	return subcommands.ExitSuccess
}
