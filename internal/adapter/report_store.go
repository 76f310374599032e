package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/pikescope/internal/model"
)

const indexFileExt = ".yaml"

// IndexStore persists and retrieves resolved scope indexes.
type IndexStore interface {
	SaveIndex(dir m.Path, entries []m.IndexEntry) error
	LoadIndex(dir m.Path) ([]m.IndexEntry, error)
}

// LocalIndexStore writes one YAML document per indexed file.
type LocalIndexStore struct{}

// NewIndexStore constructs an IndexStore implementation.
func NewIndexStore() IndexStore {
	return &LocalIndexStore{}
}

// SaveIndex writes every entry to dir, named after a hash of its file path so
// re-indexing a file overwrites its previous document.
func (s *LocalIndexStore) SaveIndex(dir m.Path, entries []m.IndexEntry) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	for _, entry := range entries {
		data, err := yaml.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal index for %s: %w", entry.File, err)
		}

		target := filepath.Join(string(dir), s.entryName(entry.File))
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("write index for %s: %w", entry.File, err)
		}
	}

	return nil
}

// LoadIndex reads every index document in dir, ordered by file path.
func (s *LocalIndexStore) LoadIndex(dir m.Path) ([]m.IndexEntry, error) {
	dirEntries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read index dir: %w", err)
	}

	var entries []m.IndexEntry

	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), indexFileExt) {
			continue
		}

		// #nosec G304 - dir is the index directory chosen by the user
		data, err := os.ReadFile(filepath.Join(string(dir), de.Name()))
		if err != nil {
			return nil, fmt.Errorf("read index %s: %w", de.Name(), err)
		}

		var entry m.IndexEntry
		if err := yaml.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("unmarshal index %s: %w", de.Name(), err)
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].File < entries[j].File
	})

	return entries, nil
}

func (s *LocalIndexStore) entryName(file m.Path) string {
	sum := sha256.Sum256([]byte(file))

	return fmt.Sprintf("%x", sum[:8]) + indexFileExt
}
