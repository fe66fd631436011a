package stock

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Category is one of the three fixed inventory buckets. There are no dynamic
// categories.
type Category int

const (
	Products Category = iota
	Mobilization
	Services
)

// Categories lists all buckets in display (and export) order.
var Categories = []Category{Products, Mobilization, Services}

func (c Category) String() string {
	switch c {
	case Products:
		return "products"
	case Mobilization:
		return "mobilization"
	case Services:
		return "services"
	default:
		return "unknown"
	}
}

// Title returns the category name capitalized for display.
func (c Category) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// prefix is the one-letter id prefix of the bucket.
func (c Category) prefix() string {
	switch c {
	case Mobilization:
		return "M"
	case Services:
		return "S"
	default:
		return "P"
	}
}

// ParseCategory parses an exact category name.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "products":
		return Products, nil
	case "mobilization":
		return Mobilization, nil
	case "services":
		return Services, nil
	default:
		return Products, fmt.Errorf("unknown category %q (want products, mobilization or services)", s)
	}
}

// ClassifyCategory maps free text onto a bucket by substring: anything
// containing "mob" is mobilization, anything containing "serv" is services,
// everything else lands in products. Imports rely on this tolerant, lossy
// mapping rather than an exact match.
func ClassifyCategory(s string) Category {
	t := strings.ToLower(s)
	switch {
	case strings.Contains(t, "mob"):
		return Mobilization
	case strings.Contains(t, "serv"):
		return Services
	default:
		return Products
	}
}

// MarshalJSON persists the category by name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads a persisted category defensively: names go through
// ClassifyCategory, and the numeric form of older exports is accepted too.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = ClassifyCategory(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cannot parse category from %q: %w", string(b), err)
	}
	if n < 0 || n >= len(Categories) {
		n = 0
	}
	*c = Category(n)
	return nil
}

// LowStockThreshold is the display-only boundary below which an item counts
// as low stock. It is a classification, not a stored attribute.
const LowStockThreshold = 5

// StockItem is one inventory line. PriceKsh is the authoritative unit price;
// PriceUSD is a derived display convenience kept in sync by the currency
// rate.
type StockItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Quantity    float64  `json:"quantity"`
	PriceKsh    float64  `json:"priceKsh"`
	PriceUSD    float64  `json:"priceUSD,omitempty"`
	Description string   `json:"description,omitempty"`
}

// LowStock reports whether the item's quantity is below the display
// threshold.
func (it StockItem) LowStock() bool { return it.Quantity < LowStockThreshold }

// NormalizeName is the merge key: surrounding whitespace trimmed, case
// folded.
func NormalizeName(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// NewItemID generates a best-effort unique id: the category prefix followed
// by four random digits. Callers that can see the whole catalog should
// regenerate on collision.
func NewItemID(c Category) string {
	return fmt.Sprintf("%s%04d", c.prefix(), rand.IntN(10000))
}
