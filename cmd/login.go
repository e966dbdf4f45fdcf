package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	name     string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "verify account credentials" }
func (*loginCmd) Usage() string {
	return `lgr login [-u <name>] -p <password>

  Verifies the password against the stored verifier and reports the result.
  With a single account in the store, -u may be omitted.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Password to verify.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Printf("Credentials OK for %q (%d records).\n", s.Name(), len(s.Records()))
	return subcommands.ExitSuccess
}
