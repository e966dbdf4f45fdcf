package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
)

type addCmd struct {
	name     string
	password string
	date     string
	amount   string
	category string
	note     string
	force    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a record to an account" }
func (*addCmd) Usage() string {
	return `lgr add [-u <name>] -p <password> -a <amount> -c <category> [-d <date>] [-n <note>]

  Appends one record to the account's sequence and persists immediately.
  The category "收入" (or "income" in any case) marks an inflow; everything
  else is an outflow. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.password, "p", "", "Account password.")
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Record date, YYYY-MM-DD.")
	f.StringVar(&c.amount, "a", "", "Amount, a non-negative decimal.")
	f.StringVar(&c.category, "c", "", "Category (free text).")
	f.StringVar(&c.note, "n", "", "Note (free text, may be empty).")
	f.BoolVar(&c.force, "force", false, "Skip the advisory record checks.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := ledger.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	record := ledger.Record{Date: c.date, Amount: amount, Category: c.category, Note: c.note}
	if !c.force {
		if err := ledger.CheckRecord(record); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (use -force to add anyway)\n", err)
			return subcommands.ExitUsageError
		}
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
	if err := l.AddRecord(s, record); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s record #%d to %q.\n", record.Kind(), len(s.Records())-1, s.Name())
	return subcommands.ExitSuccess
}
