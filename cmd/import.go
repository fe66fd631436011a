package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import items from a CSV or XLSX file" }
func (*importCmd) Usage() string {
	return `konsut import [-yes] <file>

  Parses the file into items and appends them to the stock book after
  reporting how many rows were read. Import is strictly additive: rows are
  never merged with existing items by name, and every imported item gets a
  fresh id. Short rows get defaults; the category cell is matched by
  substring ("mob", "serv", anything else lands in products).
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Skip the confirmation prompt.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file argument is required.")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	var items []stock.StockItem
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		items, err = stock.DecodeXLSX(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	} else {
		items = stock.DecodeCSV(string(data))
	}

	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: the file contains 0 valid items, nothing imported.")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Parsed %d items from %s.\n", len(items), filename)
	if !p.yes && !confirm("Add them to the stock book?") {
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}

	s := openStore()
	if err := s.Import(items); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d items.\n", len(items))
	return subcommands.ExitSuccess
}
