package stock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Keys used by the core on the persistent store.
const (
	KeyStock = "STOCK"
	KeyRate  = "CURRENCY_RATE"
	KeyDraft = "DRAFT"
	// keyLegacy was written by the invoicing tool this one replaced. Nothing
	// writes it anymore; ClearAll still erases it for cleanup.
	keyLegacy = "INVOICE_ITEMS"
)

// TextStore is the persistent store adapter: synchronous key-value access to
// text blobs on a durable local medium. Implementations have no side effects
// beyond the storage medium itself.
type TextStore interface {
	// ReadText returns the stored text for key, or false when absent.
	ReadText(key string) (string, bool)
	// WriteText stores text under key, overwriting any previous value.
	WriteText(key, text string) error
	// DeleteText erases key. Deleting an absent key is not an error.
	DeleteText(key string) error
}

// DirStore keeps one file per key under a local data directory. The files
// are plain JSON text, human readable and easy to back up.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. The directory is created lazily
// on the first write.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, strings.ToLower(key)+".json")
}

func (s *DirStore) ReadText(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (s *DirStore) WriteText(key, text string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) DeleteText(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory TextStore for tests and fixtures.
type MemStore map[string]string

func NewMemStore() MemStore { return make(MemStore) }

func (m MemStore) ReadText(key string) (string, bool) { v, ok := m[key]; return v, ok }
func (m MemStore) WriteText(key, text string) error   { m[key] = text; return nil }
func (m MemStore) DeleteText(key string) error        { delete(m, key); return nil }
