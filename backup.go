package stock

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file handles whole-state snapshots: catalog, rate and draft in one
// JSON document. Restore reads tolerantly because backups made by older
// versions of the tool nested the buckets differently.

// Backup is the snapshot document.
type Backup struct {
	Exported string                 `json:"exported"`
	Rate     float64                `json:"rate"`
	Catalog  map[string][]StockItem `json:"catalog"`
	Draft    Draft                  `json:"draft"`
}

// EncodeBackup snapshots the store into a single indented JSON document.
func EncodeBackup(s *Store) (string, error) {
	b := Backup{
		Exported: time.Now().Format("2006-01-02"),
		Rate:     s.Rate(),
		Catalog:  make(map[string][]StockItem, len(Categories)),
		Draft:    s.LoadDraft(),
	}
	for _, cat := range Categories {
		b.Catalog[cat.String()] = s.Items(cat)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal backup: %w", err)
	}
	return string(data), nil
}

// DecodeBackup reads a snapshot document. Layout is probed with jsonpath
// queries: current backups keep the buckets under "catalog", the invoice
// tool's exports used "stock" or "items", and the oldest ones put the
// buckets at the top level. The rate may be named "rate" or "currencyRate".
// A malformed bucket is dropped with a log line, not an error; a document
// with no recognizable bucket at all is.
func DecodeBackup(text string) (Catalog, float64, error) {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, 0, fmt.Errorf("cannot parse backup: %w", err)
	}

	root, ok := lookup(doc, "$.catalog", "$.stock", "$.items")
	if !ok {
		root = doc
	}

	c := NewCatalog()
	seen := false
	for _, cat := range Categories {
		raw, ok := lookup(root, "$."+cat.String())
		if !ok {
			continue
		}
		seen = true
		items, err := reparseItems(raw, cat)
		if err != nil {
			log.Printf("discarding malformed %s bucket in backup: %v", cat, err)
			continue
		}
		c[cat] = items
	}
	if !seen {
		return nil, 0, fmt.Errorf("backup has no recognizable stock buckets")
	}

	rate := DefaultRate
	if v, ok := lookup(doc, "$.rate", "$.currencyRate"); ok {
		if f, ok := v.(float64); ok && f > 0 {
			rate = f
		}
	}
	return c, rate, nil
}

// lookup evaluates jsonpath queries in order and returns the first hit.
func lookup(doc any, paths ...string) (any, bool) {
	for _, p := range paths {
		if v, err := jsonpath.Get(p, doc); err == nil && v != nil {
			return v, true
		}
	}
	return nil, false
}

// reparseItems maps a loosely typed bucket back onto items by a json round
// trip, then pins each item to its bucket.
func reparseItems(raw any, cat Category) ([]StockItem, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var items []StockItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Category = cat
		if items[i].Name == "" {
			items[i].Name = "Unknown Item"
		}
	}
	return items, nil
}
