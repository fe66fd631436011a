package renderer

import (
	"strings"
	"testing"

	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

func newRenderStore(t *testing.T) *stock.Store {
	t.Helper()

	s := stock.Open(stock.NewMemStore())
	if err := s.ClearAll(); err != nil {
		t.Fatal(err)
	}
	add := func(cat stock.Category, name string, qty, ksh, usd float64) {
		t.Helper()
		if _, _, err := s.AddOrMerge(cat, stock.Draft{Name: name, Quantity: qty, PriceKsh: ksh, PriceUSD: usd}); err != nil {
			t.Fatalf("AddOrMerge(%q) failed: %v", name, err)
		}
	}
	add(stock.Products, "Gigabit Router", 10, 8500, 65.38)
	add(stock.Products, "Cat6 Cable Roll", 4, 12000, 92.31)
	add(stock.Mobilization, "Freight Charges", 1, 5000, 38.46)
	return s
}

func TestCatalogMarkdown(t *testing.T) {
	got := CatalogMarkdown(newRenderStore(t))

	for _, want := range []string{
		"# Konsut Stock Book",
		"## Products",
		"## Mobilization",
		"## Services",
		"Gigabit Router",
		"Freight Charges",
		"_No items in this category._",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CatalogMarkdown() is missing %q:\n%s", want, got)
		}
	}

	// 4 units of cable is below the threshold, 10 routers are not.
	if !strings.Contains(got, "LOW") {
		t.Errorf("CatalogMarkdown() should flag the cable roll as low:\n%s", got)
	}
}

func TestCatalogMarkdown_SingleCategory(t *testing.T) {
	got := CatalogMarkdown(newRenderStore(t), stock.Mobilization)

	if strings.Contains(got, "## Products") {
		t.Errorf("a filtered listing should not show other buckets:\n%s", got)
	}
	if !strings.Contains(got, "Freight Charges") {
		t.Errorf("CatalogMarkdown() is missing the mobilization rows:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(newRenderStore(t))

	for _, want := range []string{
		"# Stock Summary on ",
		"| Products | 2 |",
		"| Mobilization | 1 |",
		"| Services | 0 |",
		// 10×8500 + 4×12000 + 1×5000
		"138,000.00",
		// the cable roll and the single freight line are below the threshold
		"3 items in stock, 2 running low",
		"1 USD = 130 Ksh",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() is missing %q:\n%s", want, got)
		}
	}
}
