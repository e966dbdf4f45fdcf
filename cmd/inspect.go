package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
)

type inspectCmd struct {
	path string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query a snapshot file with a JSONPath expression" }
func (*inspectCmd) Usage() string {
	return `lgr inspect -q <jsonpath> [<file>]

  Evaluates a JSONPath expression against a snapshot file (stdin when the
  file is omitted) and prints the result. Useful to peek at an export
  without importing it, e.g.:

    lgr inspect -q '$.users.alice.records[0].amount' ledger_backup.json
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "q", "$", "JSONPath expression to evaluate.")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data []byte
	var err error
	switch f.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(f.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: inspect takes at most one file")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading document: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := ledger.Query(data, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}
