package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type restoreCmd struct {
	yes bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the stock book with a snapshot (admin only)" }
func (*restoreCmd) Usage() string {
	return `konsut -as admin restore [-yes] <file>

  Replaces the whole stock book and the currency rate with the contents of a
  backup file. Snapshots from older versions of the tool are read tolerantly.
`
}

func (p *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Skip the confirmation prompt.")
}

func (p *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isAdmin() {
		fmt.Fprintln(os.Stderr, "Error: restore requires the administrator role (run with -as admin).")
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file argument is required.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	catalog, rate, err := stock.DecodeBackup(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Snapshot holds %d items.\n", catalog.Size())
	if !p.yes && !confirm("Replace the current stock book with it?") {
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}

	if err := openStore().Restore(catalog, rate); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d items.\n", catalog.Size())
	return subcommands.ExitSuccess
}
