// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mzhou/ledger"
)

// Commands is the list of all subcommands; a main package registers them
// on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&addCmd{},
	&rmCmd{},
	&txCmd{},
	&summaryCmd{},
	&trendCmd{},
	&breakdownCmd{},
	&accountsCmd{},
	&deleteAccountCmd{},
	&exportCmd{},
	&importCmd{},
	&codeCmd{},
	&inspectCmd{},
	&topicCmd{},
}

// As a CLI application with a very short-lived lifecycle, global flags for
// the shared configuration are fine.

var storeDir = flag.String("store-dir", defaultStoreDir(), "Directory holding the ledger store")
var backend = flag.String("backend", defaultBackend(), "Persistence backend: file or sqlite")
var currency = flag.String("currency", "CNY", "Currency used to format amounts in reports")

func defaultStoreDir() string {
	if dir := os.Getenv("LEDGER_STORE"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lgr"
	}
	return filepath.Join(home, ".lgr")
}

func defaultBackend() string {
	if b := os.Getenv("LEDGER_BACKEND"); b != "" {
		return b
	}
	return "file"
}

// openStore opens the ledger store over the configured medium. The returned
// closer is the teardown hook: it flushes the active session and persists,
// best-effort, logging a refused final write instead of failing the caller.
func openStore() (*ledger.LedgerStore, func(), error) {
	switch *backend {
	case "file":
		l := ledger.Open(ledger.NewFileMedium(*storeDir))
		return l, func() {
			if err := l.Close(); err != nil {
				log.Printf("warning: final persist failed: %v", err)
			}
		}, nil
	case "sqlite":
		m, err := ledger.OpenSQLiteMedium(filepath.Join(*storeDir, "ledger.db"))
		if err != nil {
			return nil, nil, err
		}
		l := ledger.Open(m)
		return l, func() {
			if err := l.Close(); err != nil {
				log.Printf("warning: final persist failed: %v", err)
			}
			m.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file or sqlite)", *backend)
	}
}

// login verifies the credentials and opens a session. An empty name
// defaults to the only account when exactly one exists, mirroring the
// single-account prefill of the device UI.
func login(l *ledger.LedgerStore, name, password string) (*ledger.Session, error) {
	if name == "" {
		if names := l.AccountNames(); len(names) == 1 {
			name = names[0]
		}
	}
	ok, err := l.Verify(name, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("account %q: %w", name, ledger.ErrWrongCredential)
	}
	return l.OpenSession(name)
}

// printMarkdown renders markdown for the terminal; when rendering fails the
// raw markdown is still shown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
