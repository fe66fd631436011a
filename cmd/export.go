package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the stock book to a CSV or XLSX file" }
func (*exportCmd) Usage() string {
	return `konsut export [-o <file>] [-format csv|xlsx]

  Writes the whole stock book as a flat table, one row per item. The default
  is a CSV file named konsut_stock_<date>.csv in the current directory.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to konsut_stock_<date>.csv.")
	f.StringVar(&p.format, "format", "", "Export format (csv or xlsx). Inferred from -o when omitted.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	format := p.format
	if format == "" {
		if strings.HasSuffix(strings.ToLower(p.output), ".xlsx") {
			format = "xlsx"
		} else {
			format = "csv"
		}
	}

	output := p.output
	if output == "" {
		output = stock.ExportFilename(time.Now())
		if format == "xlsx" {
			output = strings.TrimSuffix(output, ".csv") + ".xlsx"
		}
	}

	var data []byte
	switch format {
	case "csv":
		data = []byte(stock.EncodeCSV(s.Catalog()))
	case "xlsx":
		var err error
		data, err = stock.EncodeXLSX(s.Catalog())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or xlsx).\n", format)
		return subcommands.ExitUsageError
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d items to %s.\n", s.Size(), output)
	return subcommands.ExitSuccess
}
