package stock

import (
	"iter"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Outcome tells the caller what AddOrMerge did, so the presentation layer
// can word its notification.
type Outcome int

const (
	Created Outcome = iota
	Merged
)

func (o Outcome) String() string {
	if o == Merged {
		return "merged"
	}
	return "created"
}

// Store owns the catalog and the currency rate, and writes every mutation
// through to its TextStore backend immediately. It is meant to be created by
// the application root and passed by handle to whatever presentation layer
// consumes it; there is no ambient singleton.
//
// The store is single-threaded by design: every operation runs to completion
// in response to a discrete user action, so there is no locking discipline.
type Store struct {
	backend TextStore
	catalog Catalog
	rate    float64
}

// Open loads the persisted state from backend. A missing or unreadable
// catalog is replaced by the built-in seed; a missing or unreadable rate by
// the default rate. Parse failures are recovered locally and only logged.
func Open(backend TextStore) *Store {
	s := &Store{backend: backend, rate: DefaultRate}

	if text, ok := backend.ReadText(KeyStock); ok {
		c, err := decodeCatalog(text)
		if err != nil {
			log.Printf("falling back to seed catalog: %v", err)
			s.catalog = seedCatalog()
		} else {
			s.catalog = c
		}
	} else {
		s.catalog = seedCatalog()
	}

	if text, ok := backend.ReadText(KeyRate); ok {
		rate, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || rate <= 0 {
			log.Printf("falling back to default currency rate, stored value was %q", text)
		} else {
			s.rate = rate
		}
	}
	return s
}

// Items returns a copy of the category bucket in insertion order.
func (s *Store) Items(cat Category) []StockItem {
	return slices.Clone(s.catalog[cat])
}

// All iterates every item in bucket-then-insertion order.
func (s *Store) All() iter.Seq[StockItem] { return s.catalog.All() }

// Size is the number of items across all buckets.
func (s *Store) Size() int { return s.catalog.Size() }

// Catalog returns a deep-enough copy of all buckets for encoders and
// renderers.
func (s *Store) Catalog() Catalog {
	c := NewCatalog()
	for _, cat := range Categories {
		c[cat] = slices.Clone(s.catalog[cat])
	}
	return c
}

// TotalValue is the catalog value in shillings, recomputed on demand.
func (s *Store) TotalValue() float64 { return s.catalog.TotalValue() }

// Find looks an item up by id across all buckets.
func (s *Store) Find(id string) (StockItem, bool) {
	for it := range s.catalog.All() {
		if it.ID == id {
			return it, true
		}
	}
	return StockItem{}, false
}

// Rate returns the current shillings-per-dollar rate.
func (s *Store) Rate() float64 { return s.rate }

// SetRate stores a new rate and persists it immediately.
func (s *Store) SetRate(rate float64) error {
	if rate <= 0 {
		return &ValidationError{Field: "rate", Reason: "must be a positive number"}
	}
	s.rate = rate
	return s.backend.WriteText(KeyRate, strconv.FormatFloat(rate, 'f', -1, 64))
}

// newID generates an id not taken anywhere in the catalog yet.
func (s *Store) newID(cat Category) string {
	for {
		id := NewItemID(cat)
		if !s.catalog.hasID(id) {
			return id
		}
	}
}

// AddOrMerge applies a submitted draft to the category bucket. A submission
// whose normalized name matches an existing item merges into it: the
// quantity is added, and a zero price or blank description never overwrites
// an existing value. Otherwise a new item is created with a fresh id.
// A blank name is a ValidationError and leaves the store untouched.
func (s *Store) AddOrMerge(cat Category, d Draft) (Outcome, StockItem, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Created, StockItem{}, &ValidationError{Field: "name", Reason: "cannot be blank"}
	}

	if i := s.catalog.findByName(cat, name); i >= 0 {
		it := s.catalog[cat][i]
		it.Quantity += d.Quantity
		if d.PriceKsh != 0 {
			it.PriceKsh = d.PriceKsh
		}
		if d.PriceUSD != 0 {
			it.PriceUSD = d.PriceUSD
		}
		if d.ShowDescriptions && strings.TrimSpace(d.Description) != "" {
			it.Description = d.Description
		}
		s.catalog[cat][i] = it
		return Merged, it, s.persist()
	}

	it := StockItem{
		ID:       s.newID(cat),
		Name:     name,
		Category: cat,
		Quantity: d.Quantity,
		PriceKsh: d.PriceKsh,
		PriceUSD: d.PriceUSD,
	}
	if d.ShowDescriptions {
		it.Description = strings.TrimSpace(d.Description)
	}
	s.catalog[cat] = append(s.catalog[cat], it)
	return Created, it, s.persist()
}

// Update replaces the item with a matching id inside the bucket named by the
// item itself; an edit never migrates an item across buckets. Updating an id
// that is not there is a silent no-op: repeated or out-of-order edits must
// stay harmless. Renaming onto another item's name is not merge-checked.
func (s *Store) Update(item StockItem) error {
	bucket := s.catalog[item.Category]
	for i, it := range bucket {
		if it.ID == item.ID {
			bucket[i] = item
			return s.persist()
		}
	}
	return nil
}

// Remove deletes the item with a matching id from the category bucket.
// Removing an absent id is a silent no-op, not an error. Confirmation is the
// caller's responsibility.
func (s *Store) Remove(cat Category, id string) error {
	bucket := s.catalog[cat]
	for i, it := range bucket {
		if it.ID == id {
			s.catalog[cat] = append(bucket[:i:i], bucket[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Import appends decoded rows to their buckets. Imported rows are never
// merged with existing items by name; an id that is blank or already taken
// is regenerated.
func (s *Store) Import(items []StockItem) error {
	for _, it := range items {
		if it.ID == "" || s.catalog.hasID(it.ID) {
			it.ID = s.newID(it.Category)
		}
		s.catalog[it.Category] = append(s.catalog[it.Category], it)
	}
	return s.persist()
}

// Restore replaces the whole catalog and rate with a decoded backup and
// persists both.
func (s *Store) Restore(c Catalog, rate float64) error {
	s.catalog = c
	if rate > 0 {
		s.rate = rate
	}
	if err := s.backend.WriteText(KeyRate, strconv.FormatFloat(s.rate, 'f', -1, 64)); err != nil {
		return err
	}
	return s.persist()
}

// ClearAll empties every bucket and erases all persisted state, including
// the legacy invoice key. The in-memory rate goes back to the default. The
// caller gates this behind the administrator role and a confirmation.
func (s *Store) ClearAll() error {
	s.catalog = NewCatalog()
	s.rate = DefaultRate
	for _, key := range []string{KeyStock, KeyRate, KeyDraft, keyLegacy} {
		if err := s.backend.DeleteText(key); err != nil {
			return err
		}
	}
	return nil
}

// SaveDraft overwrites the autosaved form state under its own key.
func (s *Store) SaveDraft(d Draft) error {
	text, err := encodeDraft(d)
	if err != nil {
		return err
	}
	return s.backend.WriteText(KeyDraft, text)
}

// LoadDraft returns the autosaved form state, or the blank form when absent
// or unreadable.
func (s *Store) LoadDraft() Draft {
	text, ok := s.backend.ReadText(KeyDraft)
	if !ok {
		return DefaultDraft()
	}
	return decodeDraft(text)
}

// persist writes the whole catalog back to the backend. Write-through, no
// batching, no debounce.
func (s *Store) persist() error {
	text, err := encodeCatalog(s.catalog)
	if err != nil {
		return err
	}
	return s.backend.WriteText(KeyStock, text)
}
