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

type txCmd struct {
	name     string
	password string
	month    string
	keyword  string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the records of an account" }
func (*txCmd) Usage() string {
	return `lgr tx [-u <name>] -p <password> [-m <YYYY-MM>] [-s <keyword>]

  Lists the account's records in entry order. Without filters the position
  column is the index 'lgr rm -i' deletes by; with -m or -s the positions
  are display-only.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.StringVar(&c.month, "m", "", "Keep records of this month, e.g. 2024-01.")
	f.StringVar(&c.keyword, "s", "", "Keep records whose note contains this keyword.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	records := filter.Apply(s.Records())

	title := fmt.Sprintf("Records for %s", s.Name())
	if c.month != "" {
		title += " in " + c.month
	}
	if c.keyword != "" {
		title += fmt.Sprintf(" matching %q", c.keyword)
	}

	printMarkdown(renderer.Records(title, records, *currency))
	return subcommands.ExitSuccess
}
