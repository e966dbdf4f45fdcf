package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts in the store" }
func (*accountsCmd) Usage() string {
	return `lgr accounts

  Lists account names and their record counts. No credentials needed;
  record contents stay hidden.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	names := l.AccountNames()
	if len(names) == 0 {
		fmt.Println("No accounts. Create one with 'lgr register'.")
		return subcommands.ExitSuccess
	}
	for _, name := range names {
		fmt.Printf("%s\t%d record(s)\n", name, len(l.Store()[name].Records))
	}
	return subcommands.ExitSuccess
}
