package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type editCmd struct {
	id       string
	name     string
	quantity float64
	priceKsh float64
	priceUSD float64
	desc     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an item in place by id" }
func (*editCmd) Usage() string {
	return `konsut edit -id <id> [-n <name>] [-q <quantity>] [-ksh <price>] [-usd <price>] [-desc <text>]

  Replaces fields of the item with the given id. An edit never moves an item
  to another category, and editing an id that does not exist does nothing.
  Unlike add, a rename is not checked against other item names.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the item to edit.")
	f.StringVar(&p.name, "n", "", "New name.")
	f.Float64Var(&p.quantity, "q", 0, "New quantity.")
	f.Float64Var(&p.priceKsh, "ksh", 0, "New unit price in shillings.")
	f.Float64Var(&p.priceUSD, "usd", 0, "New unit price in dollars.")
	f.StringVar(&p.desc, "desc", "", "New description.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["n"] {
		item.Name = p.name
	}
	if set["q"] {
		item.Quantity = p.quantity
	}
	if set["desc"] {
		item.Description = p.desc
	}
	switch {
	case set["ksh"]:
		item.PriceKsh = p.priceKsh
		item.PriceUSD = stock.USDFromKsh(p.priceKsh, s.Rate())
	case set["usd"]:
		item.PriceUSD = p.priceUSD
		item.PriceKsh = stock.KshFromUSD(p.priceUSD, s.Rate())
	}

	if err := s.Update(item); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s %q.\n", item.ID, item.Name)
	return subcommands.ExitSuccess
}
