package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
	"github.com/wanjohialvins/Invoice-system-sub001/renderer"
)

type listCmd struct {
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the stock book as a table" }
func (*listCmd) Usage() string {
	return `konsut list [-c <category>]

  Lists the stock book, one table per category, with a LOW marker on items
  whose quantity has fallen below 5.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only list this category bucket.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	cats := stock.Categories
	if p.category != "" {
		cat, err := stock.ParseCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		cats = []stock.Category{cat}
	}

	printMarkdown(renderer.CatalogMarkdown(s, cats...))
	return subcommands.ExitSuccess
}
