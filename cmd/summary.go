package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/wanjohialvins/Invoice-system-sub001/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show totals per category and the grand total" }
func (*summaryCmd) Usage() string {
	return `konsut summary

  Shows the value of each category bucket, the total catalog value in both
  currencies, and how many items are running low.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.SummaryMarkdown(openStore()))
	return subcommands.ExitSuccess
}
