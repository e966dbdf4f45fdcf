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

type summaryCmd struct {
	name     string
	password string
	month    string
	keyword  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display inflow, outflow and balance" }
func (*summaryCmd) Usage() string {
	return `lgr summary [-u <name>] -p <password> [-m <YYYY-MM>] [-s <keyword>]

  Totals the account's inflows and outflows and shows the balance.
  Filters narrow the records the totals cover.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.StringVar(&c.month, "m", "", "Keep records of this month, e.g. 2024-01.")
	f.StringVar(&c.keyword, "s", "", "Keep records whose note contains this keyword.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filter := ledger.Filter{Month: c.month, Keyword: c.keyword}
	summary := ledger.Summarize(filter.Apply(s.Records()))

	printMarkdown(renderer.Summary(s.Name(), summary, *currency))
	return subcommands.ExitSuccess
}
