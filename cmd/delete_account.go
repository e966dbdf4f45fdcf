package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteAccountCmd struct {
	name     string
	password string
	force    bool
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and all its records" }
func (*deleteAccountCmd) Usage() string {
	return `lgr delete-account -u <name> -p <password> [-force]

  Deletes the account and every record it holds. There is no undo; export
  a backup first unless -force is given.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.BoolVar(&c.force, "force", false, "Skip the confirmation reminder.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -u is required for delete-account")
		return subcommands.ExitUsageError
	}

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
	if n := len(s.Records()); n > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Account %q holds %d record(s). Re-run with -force to delete anyway.\n", c.name, n)
		return subcommands.ExitFailure
	}

	if err := l.DeleteAccount(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}
