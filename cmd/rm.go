package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	name     string
	password string
	index    int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by its position" }
func (*rmCmd) Usage() string {
	return `lgr rm [-u <name>] -p <password> -i <index>

  Deletes the record at the given position in the account's sequence, as
  shown by 'lgr tx' without filters. The index is validated against the
  sequence at deletion time; a stale index is rejected.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.IntVar(&c.index, "i", -1, "Zero-based position of the record to delete.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.DeleteRecord(s, c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted record %d from %q (%d left).\n", c.index, s.Name(), len(s.Records()))
	return subcommands.ExitSuccess
}
