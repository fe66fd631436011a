package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a whole-state JSON snapshot" }
func (*backupCmd) Usage() string {
	return `konsut backup [-o <file>]

  Writes the catalog, the currency rate and the autosaved draft into a single
  JSON document that restore can read back.
`
}

func (p *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to konsut_backup_<date>.json.")
}

func (p *backupCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	output := p.output
	if output == "" {
		output = fmt.Sprintf("konsut_backup_%s.json", time.Now().Format("2006-01-02"))
	}

	text, err := stock.EncodeBackup(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backed up %d items to %s.\n", s.Size(), output)
	return subcommands.ExitSuccess
}
