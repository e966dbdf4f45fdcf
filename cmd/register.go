package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	name     string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `lgr register -u <name> -p <password>

  Creates a new, empty account. Only a one-way verifier derived from the
  password is ever stored or exported.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name (case-sensitive).")
	f.StringVar(&c.password, "p", "", "Password for the new account.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p are required.")
		return subcommands.ExitUsageError
	}
	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := l.Register(c.name, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q created.\n", c.name)
	return subcommands.ExitSuccess
}
