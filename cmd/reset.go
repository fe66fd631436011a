package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the whole stock book (admin only)" }
func (*resetCmd) Usage() string {
	return `konsut -as admin reset [-yes]

  Empties all three category buckets and erases everything persisted: the
  catalog, the currency rate and the autosaved draft. The next run starts
  from the built-in sample stock again.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Skip the confirmation prompt.")
}

func (p *resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isAdmin() {
		fmt.Fprintln(os.Stderr, "Error: reset requires the administrator role (run with -as admin).")
		return subcommands.ExitFailure
	}
	if !p.yes && !confirm("This erases the whole stock book, the currency rate and the draft. Continue?") {
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}

	if err := openStore().ClearAll(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Stock book cleared.")
	return subcommands.ExitSuccess
}
