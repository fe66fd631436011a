// Package cmd implements the CLI application to keep the Konsut stock book.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

// Commands lists every subcommand for registration and shell completion.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&editCmd{},
	&rmCmd{},
	&rateCmd{},
	&summaryCmd{},
	&exportCmd{},
	&importCmd{},
	&resetCmd{},
	&backupCmd{},
	&restoreCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application the lifecycle is very short lived, so it is ok to use
// global variables for app-wide flags.

var storeDir = flag.String("store", ".konsut", "Path to the stock data directory")
var role = flag.String("as", "staff", "Role to run as (staff or admin)")

// openStore loads the store from the data directory, seeding it on first
// run.
func openStore() *stock.Store {
	return stock.Open(stock.NewDirStore(*storeDir))
}

// isAdmin reports whether destructive maintenance commands are unlocked.
func isAdmin() bool { return *role == "admin" }

// confirm asks a yes/no question on the terminal. Destructive operations and
// import commits go through here unless the command's -yes flag was set.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
