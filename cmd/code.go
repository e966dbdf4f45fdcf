package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
)

type codeCmd struct {
	scope string
}

func (*codeCmd) Name() string     { return "code" }
func (*codeCmd) Synopsis() string { return "print a sync code for copy-paste transfer" }
func (*codeCmd) Usage() string {
	return `lgr code [-u <name>]

  Prints a single-line token carrying a snapshot of the store (or of one
  account with -u). Paste it on another device with 'lgr import -code'.
  The token only encodes the data, it does not protect it.
`
}

func (c *codeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "u", ledger.ScopeAll, "Account to encode. Defaults to the whole store.")
}

func (c *codeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	code, err := ledger.EncodeSyncCode(l.Store(), c.scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding sync code: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(code)
	return subcommands.ExitSuccess
}
