package stock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CSVHeader is the first row of every export.
const CSVHeader = "Category,Name,Quantity,PriceKsh,PriceUSD,Description"

// ExportFilename is the default name of a CSV export made on the given day.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("konsut_stock_%s.csv", t.Format("2006-01-02"))
}

// EncodeCSV renders the whole catalog as a flat comma-separated table: a
// header row, then one row per item in bucket-then-insertion order. String
// fields are double-quoted with internal quotes doubled; numbers are
// unquoted; a missing dollar price is emitted as 0 and a missing description
// as an empty quoted string.
func EncodeCSV(c Catalog) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for it := range c.All() {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s\n",
			quoteCSV(it.Category.String()),
			quoteCSV(it.Name),
			formatNumber(it.Quantity),
			formatNumber(it.PriceKsh),
			formatNumber(it.PriceUSD),
			quoteCSV(it.Description),
		)
	}
	return b.String()
}

// DecodeCSV parses uploaded table text into brand-new items, one per
// non-blank line. The parser is deliberately simple: rows are split on bare
// commas, so embedded commas or escaped quotes inside cells are not
// supported. A leading line that mentions "name" anywhere (case-insensitive)
// is treated as a header and dropped; exact header match is not required.
// Short rows get defaults: name "Unknown Item", quantity 1, prices 0, empty
// description. The category cell goes through ClassifyCategory, a lossy
// one-way mapping. Every decoded row gets a fresh id; merging with existing
// catalog entries is never attempted here.
func DecodeCSV(text string) []StockItem {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "name") {
		lines = lines[1:]
	}

	var items []StockItem
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue // skipped silently, counted as not-imported
		}
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = unquoteCSV(strings.TrimSpace(cells[i]))
		}

		cat := ClassifyCategory(cell(cells, 0))
		name := cell(cells, 1)
		if strings.TrimSpace(name) == "" {
			name = "Unknown Item"
		}
		items = append(items, StockItem{
			ID:          NewItemID(cat),
			Name:        name,
			Category:    cat,
			Quantity:    parseNumber(cell(cells, 2), 1),
			PriceKsh:    parseNumber(cell(cells, 3), 0),
			PriceUSD:    parseNumber(cell(cells, 4), 0),
			Description: cell(cells, 5),
		})
	}
	return items
}

// quoteCSV wraps a string field in double quotes, doubling internal quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// unquoteCSV strips a single layer of surrounding double quotes. It does not
// undo quote doubling; that is a known limit of the simplified parser.
func unquoteCSV(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// cell returns the i-th cell, or "" when the row is too short.
func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// formatNumber emits a number without trailing zeros, the way the catalog
// stores it.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber parses a cell as a number, substituting def on absence or
// parse failure.
func parseNumber(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}
