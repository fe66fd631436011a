package renderer

import (
	"fmt"
	"strconv"
	"time"

	stock "github.com/wanjohialvins/Invoice-system-sub001"
)

// CatalogMarkdown renders the given buckets of the store as one markdown
// table per category. With no buckets named it renders all three.
func CatalogMarkdown(s *stock.Store, cats ...stock.Category) string {
	if len(cats) == 0 {
		cats = stock.Categories
	}
	c := s.Catalog()

	var v CatalogView
	for _, cat := range cats {
		sec := Section{
			Title:    cat.Title(),
			Subtotal: stock.FormatKsh(c.CategoryValue(cat)),
		}
		for _, it := range c.Items(cat) {
			row := Row{
				ID:          it.ID,
				Name:        it.Name,
				Quantity:    formatQuantity(it.Quantity),
				PriceKsh:    stock.FormatKsh(it.PriceKsh),
				PriceUSD:    stock.FormatUSD(it.PriceUSD),
				Status:      "ok",
				Description: it.Description,
			}
			if it.LowStock() {
				row.Status = "LOW"
			}
			sec.Rows = append(sec.Rows, row)
		}
		v.Sections = append(v.Sections, sec)
	}
	return renderTemplate("catalog", "catalog.md", nil, v)
}

// SummaryMarkdown renders per-category totals, the grand total and the low
// stock count.
func SummaryMarkdown(s *stock.Store) string {
	c := s.Catalog()

	v := SummaryView{
		Date:     time.Now().Format("2006-01-02"),
		GrandKsh: stock.FormatKsh(c.TotalValue()),
		GrandUSD: stock.FormatUSD(stock.USDFromKsh(c.TotalValue(), s.Rate())),
		Count:    c.Size(),
		Rate:     fmt.Sprintf("1 USD = %s Ksh", formatQuantity(s.Rate())),
	}
	for _, cat := range stock.Categories {
		v.Rows = append(v.Rows, SummaryRow{
			Title: cat.Title(),
			Count: len(c.Items(cat)),
			Value: stock.FormatKsh(c.CategoryValue(cat)),
		})
	}
	for it := range c.All() {
		if it.LowStock() {
			v.LowStock++
		}
	}
	return renderTemplate("summary", "summary.md", nil, v)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
