package stock

import (
	"encoding/json"
	"fmt"
	"iter"
	"log"

	"github.com/shopspring/decimal"
)

// Catalog maps each category to its ordered bucket of items. Insertion order
// is display and export order; it has no effect on totals.
type Catalog map[Category][]StockItem

// NewCatalog creates an empty catalog with all three buckets present.
func NewCatalog() Catalog {
	c := make(Catalog, len(Categories))
	for _, cat := range Categories {
		c[cat] = []StockItem{}
	}
	return c
}

// Items returns the ordered bucket for a category.
func (c Catalog) Items(cat Category) []StockItem { return c[cat] }

// All iterates every item in bucket-then-insertion order.
func (c Catalog) All() iter.Seq[StockItem] {
	return func(yield func(StockItem) bool) {
		for _, cat := range Categories {
			for _, it := range c[cat] {
				if !yield(it) {
					return
				}
			}
		}
	}
}

// Size is the number of items across all buckets.
func (c Catalog) Size() int {
	n := 0
	for _, cat := range Categories {
		n += len(c[cat])
	}
	return n
}

// TotalValue sums priceKsh × quantity over every bucket. PriceUSD is
// informational and never enters the total.
func (c Catalog) TotalValue() float64 {
	total := decimal.Zero
	for it := range c.All() {
		line := decimal.NewFromFloat(it.PriceKsh).Mul(decimal.NewFromFloat(it.Quantity))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// CategoryValue sums priceKsh × quantity over one bucket.
func (c Catalog) CategoryValue(cat Category) float64 {
	total := decimal.Zero
	for _, it := range c[cat] {
		total = total.Add(decimal.NewFromFloat(it.PriceKsh).Mul(decimal.NewFromFloat(it.Quantity)))
	}
	return total.InexactFloat64()
}

// findByName returns the index in cat of the item whose normalized name
// matches, or -1.
func (c Catalog) findByName(cat Category, name string) int {
	key := NormalizeName(name)
	for i, it := range c[cat] {
		if NormalizeName(it.Name) == key {
			return i
		}
	}
	return -1
}

// hasID reports whether any bucket holds an item with this id. Ids are
// unique across the whole catalog, not per bucket.
func (c Catalog) hasID(id string) bool {
	for it := range c.All() {
		if it.ID == id {
			return true
		}
	}
	return false
}

// encodeCatalog serializes the catalog for the persistent store.
func encodeCatalog(c Catalog) (string, error) {
	obj := make(map[string][]StockItem, len(Categories))
	for _, cat := range Categories {
		obj[cat.String()] = c[cat]
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("cannot marshal catalog: %w", err)
	}
	return string(data), nil
}

// decodeCatalog parses persisted catalog text. The shape is not trusted: a
// bucket that is not a proper list is replaced with an empty one, and every
// item is pinned to the bucket it was found in.
func decodeCatalog(text string) (Catalog, error) {
	var buckets map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &buckets); err != nil {
		return nil, fmt.Errorf("cannot parse catalog: %w", err)
	}

	c := NewCatalog()
	for _, cat := range Categories {
		raw, ok := buckets[cat.String()]
		if !ok || len(raw) == 0 {
			continue
		}
		var items []StockItem
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Printf("discarding malformed %s bucket: %v", cat, err)
			continue
		}
		for i := range items {
			items[i].Category = cat
		}
		c[cat] = items
	}
	return c, nil
}
