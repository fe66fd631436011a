package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type addCmd struct {
	category string
	name     string
	quantity float64
	priceKsh float64
	priceUSD float64
	desc     string
	noDesc   bool
	stash    bool
}

func (*addCmd) Name() string { return "add" }
func (*addCmd) Synopsis() string {
	return "add an item to the stock book, merging duplicates by name"
}
func (*addCmd) Usage() string {
	return `konsut add [-c <category>] [-n <name>] [-q <quantity>] [-ksh <price>] [-usd <price>] [-desc <text>] [-stash]

  Adds an item to the stock book. An add whose name matches an existing item
  in the same category (case-insensitively, ignoring surrounding spaces)
  merges into it instead of creating a duplicate row: the quantity is added,
  and a zero price never overwrites the existing one.

  Flags left out are seeded from the autosaved draft of the previous
  invocation, so an interrupted session can be resumed. -stash saves the
  submission as the draft without committing it.

Usage Examples:
# Two more routers at the known price.
$ konsut add -c products -n "Gigabit Router" -q 2

# Start a submission now, finish it later.
$ konsut add -n "Patch Panel" -ksh 3500 -stash
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Category bucket (products, mobilization, services).")
	f.StringVar(&p.name, "n", "", "Item name, the merge key.")
	f.Float64Var(&p.quantity, "q", 1, "Quantity to add.")
	f.Float64Var(&p.priceKsh, "ksh", 0, "Unit price in shillings. Zero keeps an existing price on merge.")
	f.Float64Var(&p.priceUSD, "usd", 0, "Unit price in dollars. Derived from -ksh when omitted.")
	f.StringVar(&p.desc, "desc", "", "Item description.")
	f.BoolVar(&p.noDesc, "no-desc", false, "Leave descriptions out of this submission.")
	f.BoolVar(&p.stash, "stash", false, "Save the submission as a draft without committing it.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	// Seed the submission from the autosaved draft, then overlay only the
	// flags the user actually set.
	draft := s.LoadDraft()
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["n"] {
		draft.Name = p.name
	}
	if set["q"] {
		draft.Quantity = p.quantity
	}
	if set["desc"] {
		draft.Description = p.desc
	}
	if p.noDesc {
		draft.ShowDescriptions = false
	}
	if set["c"] {
		cat, err := stock.ParseCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		draft.Category = cat
	}

	// Whichever price was edited last drives the recompute of the other.
	switch {
	case set["ksh"]:
		draft.PriceKsh = p.priceKsh
		draft.PriceUSD = stock.USDFromKsh(p.priceKsh, s.Rate())
	case set["usd"]:
		draft.PriceUSD = p.priceUSD
		draft.PriceKsh = stock.KshFromUSD(p.priceUSD, s.Rate())
	}

	// Autosave before committing so an interrupted session can resume.
	if err := s.SaveDraft(draft); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not autosave draft: %v\n", err)
	}
	if p.stash {
		fmt.Printf("Draft stashed: %q in %s.\n", draft.Name, draft.Category)
		return subcommands.ExitSuccess
	}

	outcome, item, err := s.AddOrMerge(draft.Category, draft)
	if err != nil {
		var verr *stock.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// The committed form starts blank again, keeping only the sticky
	// category and description toggle.
	blank := stock.DefaultDraft()
	blank.Category = draft.Category
	blank.ShowDescriptions = draft.ShowDescriptions
	if err := s.SaveDraft(blank); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not reset draft: %v\n", err)
	}

	switch outcome {
	case stock.Merged:
		fmt.Printf("Merged into %s %q, quantity now %v at %s.\n",
			item.ID, item.Name, item.Quantity, stock.FormatKsh(item.PriceKsh))
	default:
		fmt.Printf("Created %s %q in %s.\n", item.ID, item.Name, item.Category)
	}
	return subcommands.ExitSuccess
}
