package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show or set the shillings-per-dollar rate" }
func (*rateCmd) Usage() string {
	return `konsut rate [<shillings per dollar>]

  Without an argument, shows the current exchange rate. With one, sets it and
  persists it immediately. The rate is a manually entered constant used to
  keep dollar prices in lock-step with shilling prices; it is never fetched
  from anywhere.
`
}

func (*rateCmd) SetFlags(*flag.FlagSet) {}

func (p *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	if f.NArg() == 0 {
		fmt.Printf("1 USD = %v Ksh\n", s.Rate())
		return subcommands.ExitSuccess
	}

	rate, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a number.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err := s.SetRate(rate); err != nil {
		var verr *stock.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Rate set: 1 USD = %v Ksh\n", rate)
	return subcommands.ExitSuccess
}
