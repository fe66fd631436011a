package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id  string
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the stock book" }
func (*rmCmd) Usage() string {
	return `konsut rm -id <id> [-yes]

  Removes the item with the given id after a confirmation prompt. Removing an
  id that does not exist does nothing.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the item to remove.")
	f.BoolVar(&p.yes, "yes", false, "Skip the confirmation prompt.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	s := openStore()
	item, ok := s.Find(p.id)
	if !ok {
		fmt.Printf("No item with id %s, nothing to do.\n", p.id)
		return subcommands.ExitSuccess
	}

	if !p.yes && !confirm(fmt.Sprintf("Remove %s %q from %s?", item.ID, item.Name, item.Category)) {
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}

	if err := s.Remove(item.Category, item.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s %q.\n", item.ID, item.Name)
	return subcommands.ExitSuccess
}
