package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

// runAdd executes the add command against the test store directory.
func runAdd(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()

	cmd := &addCmd{}
	f := flag.NewFlagSet("add", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v failed: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func findByName(t *testing.T, cat stock.Category, name string) (stock.StockItem, bool) {
	t.Helper()
	for _, it := range openStore().Items(cat) {
		if stock.NormalizeName(it.Name) == stock.NormalizeName(name) {
			return it, true
		}
	}
	return stock.StockItem{}, false
}

func TestAdd(t *testing.T) {
	*storeDir = t.TempDir()

	if got := runAdd(t, "-c", "products", "-n", "Test Widget", "-q", "2", "-ksh", "1300"); got != subcommands.ExitSuccess {
		t.Fatalf("add returned %v", got)
	}

	it, ok := findByName(t, stock.Products, "Test Widget")
	if !ok {
		t.Fatal("the widget was not added")
	}
	if it.Quantity != 2 || it.PriceKsh != 1300 {
		t.Errorf("item = %+v, want quantity 2 at 1300", it)
	}
	// The dollar price is derived from the shilling one at the default rate.
	if it.PriceUSD != 10 {
		t.Errorf("PriceUSD = %v, want 10", it.PriceUSD)
	}

	// A second add with the same name in any casing merges.
	if got := runAdd(t, "-c", "products", "-n", "test widget", "-q", "3"); got != subcommands.ExitSuccess {
		t.Fatalf("merge add returned %v", got)
	}
	it, _ = findByName(t, stock.Products, "Test Widget")
	if it.Quantity != 5 {
		t.Errorf("Quantity after merge = %v, want 5", it.Quantity)
	}
	if it.PriceKsh != 1300 {
		t.Errorf("PriceKsh after priceless merge = %v, want 1300", it.PriceKsh)
	}
}

func TestAdd_StashAndResume(t *testing.T) {
	*storeDir = t.TempDir()

	if got := runAdd(t, "-c", "services", "-n", "Fiber Splicing", "-ksh", "6500", "-stash"); got != subcommands.ExitSuccess {
		t.Fatalf("stash returned %v", got)
	}
	if _, ok := findByName(t, stock.Services, "Fiber Splicing"); ok {
		t.Fatal("a stashed draft must not be committed")
	}

	// A later bare add commits the drafted submission.
	if got := runAdd(t); got != subcommands.ExitSuccess {
		t.Fatalf("resume returned %v", got)
	}
	it, ok := findByName(t, stock.Services, "Fiber Splicing")
	if !ok {
		t.Fatal("the drafted item was not committed")
	}
	if it.PriceKsh != 6500 {
		t.Errorf("PriceKsh = %v, want the drafted 6500", it.PriceKsh)
	}
}

func TestAdd_BlankNameIsRejected(t *testing.T) {
	*storeDir = t.TempDir()

	if got := runAdd(t); got != subcommands.ExitUsageError {
		t.Errorf("adding with no name anywhere returned %v, want a usage error", got)
	}
}

func TestAdd_UnknownCategoryIsRejected(t *testing.T) {
	*storeDir = t.TempDir()

	if got := runAdd(t, "-c", "gadgets", "-n", "X"); got != subcommands.ExitUsageError {
		t.Errorf("adding with an unknown category returned %v, want a usage error", got)
	}
}
