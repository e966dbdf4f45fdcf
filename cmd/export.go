package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
)

type exportCmd struct {
	scope  string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a JSON snapshot of the store" }
func (*exportCmd) Usage() string {
	return `lgr export [-u <name>] [-o <file>]

  Writes a human-readable JSON snapshot of every account, or of one
  account with -u. The default file name follows the snapshot scope:
  ledger_backup.json for the full store, ledger_<name>.json for one
  account. Use '-o -' to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "u", ledger.ScopeAll, "Account to export. Defaults to the whole store.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the conventional snapshot name; '-' is stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	data, err := ledger.EncodeJSON(l.Store(), c.scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		os.Stdout.Write(data)
		return subcommands.ExitSuccess
	}
	path := c.output
	if path == "" {
		path = ledger.ExportFilename(c.scope)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %s to %q.\n", scopeLabel(c.scope), path)
	return subcommands.ExitSuccess
}

func scopeLabel(scope string) string {
	if scope == ledger.ScopeAll {
		return "all accounts"
	}
	return fmt.Sprintf("account %q", scope)
}
