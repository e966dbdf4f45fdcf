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

type importCmd struct {
	code string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a snapshot into the store" }
func (*importCmd) Usage() string {
	return `lgr import <file> | lgr import -code <token>

  Reads a JSON snapshot file (or a sync code with -code) and merges it:
  every account in the snapshot replaces the stored account of the same
  name, records and credentials alike. Accounts absent from the snapshot
  are untouched. '-' reads the file from stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Sync code token to import instead of a file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, status := c.decode(f)
	if snap == nil {
		return status
	}

	l, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := l.Merge(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error merging snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d account(s).\n", len(snap.Accounts))
	if s := l.Session(); s != nil {
		fmt.Printf("Active account is now %q.\n", s.Name())
	}
	return subcommands.ExitSuccess
}

// decode resolves the snapshot from the -code flag or the file argument.
// A nil snapshot means the accompanying status should be returned as-is.
func (c *importCmd) decode(f *flag.FlagSet) (*ledger.Snapshot, subcommands.ExitStatus) {
	if c.code != "" {
		snap, err := ledger.DecodeSyncCode(c.code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding sync code: %v\n", err)
			return nil, subcommands.ExitFailure
		}
		return snap, subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import needs a snapshot file or -code")
		return nil, subcommands.ExitUsageError
	}
	path := f.Arg(0)

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", path, err)
		return nil, subcommands.ExitFailure
	}

	snap, err := ledger.DecodeJSON(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", path, err)
		return nil, subcommands.ExitFailure
	}
	return snap, subcommands.ExitSuccess
}
