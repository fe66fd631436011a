package stock

import (
	"encoding/json"
	"fmt"
	"log"
)

// Draft is the autosaved, uncommitted state of the add-item form. It is
// decoupled from the catalog: it exists only to survive an interrupted
// session and is overwritten whole on every change.
type Draft struct {
	Name             string   `json:"name"`
	Quantity         float64  `json:"quantity"`
	PriceKsh         float64  `json:"priceKsh"`
	PriceUSD         float64  `json:"priceUSD"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	ShowDescriptions bool     `json:"showDescriptions"`
}

// DefaultDraft is the blank form: quantity one, products bucket,
// descriptions shown.
func DefaultDraft() Draft {
	return Draft{Quantity: 1, Category: Products, ShowDescriptions: true}
}

func encodeDraft(d Draft) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("cannot marshal draft: %w", err)
	}
	return string(data), nil
}

// decodeDraft falls back to the blank form when the persisted text is
// unreadable. The failure is local and never propagated.
func decodeDraft(text string) Draft {
	var d Draft
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		log.Printf("discarding malformed draft: %v", err)
		return DefaultDraft()
	}
	return d
}
