// Package metadata persists per-image ratings and notes as a flat CSV
// table in the watched folder. Records are keyed by image basename so
// the table survives relocating the folder.
package metadata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the table file kept inside the watched folder.
const FileName = "metadata.csv"

// DefaultRating marks an unrated image.
const DefaultRating = "0"

// Record holds the user-assigned rating and notes for one image.
// Rating is a single digit '0'-'9' as text; "0" means unrated.
type Record struct {
	Rating string
	Notes  string
}

// Store is an in-memory mirror of the metadata table. Mutations are
// written through to disk immediately, so the persisted table is never
// more than one mutation behind.
type Store struct {
	folder  string
	records map[string]Record
}

// Load reads the metadata table from folder if it exists. A missing
// file yields an empty store, not an error. A row with the wrong field
// count is a fatal load error; the store does not repair a corrupt
// table.
func Load(folder string) (*Store, error) {
	s := &Store{
		folder:  folder,
		records: make(map[string]Record),
	}

	path := filepath.Join(folder, FileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open metadata table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed metadata table %s: %w", path, err)
	}

	for _, row := range rows {
		// Older tables stored full paths; key on the basename so
		// records still match after the folder was relocated.
		name := filepath.Base(row[0])
		s.records[name] = Record{Rating: row[1], Notes: row[2]}
	}
	return s, nil
}

// Get returns the record for name, or the unrated default. It never
// creates a record.
func (s *Store) Get(name string) Record {
	if rec, ok := s.records[name]; ok {
		return rec
	}
	return Record{Rating: DefaultRating}
}

// SetRating assigns a rating digit to name, creating the record if
// absent, and saves the table.
func (s *Store) SetRating(name, rating string) error {
	rec := s.Get(name)
	rec.Rating = rating
	s.records[name] = rec
	return s.Save()
}

// SetNotes assigns free-text notes to name, creating the record if
// absent, and saves the table.
func (s *Store) SetNotes(name, notes string) error {
	rec := s.Get(name)
	rec.Notes = notes
	s.records[name] = rec
	return s.Save()
}

// Len reports the number of known records.
func (s *Store) Len() int {
	return len(s.records)
}

// Names returns the known basenames in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes one row per record, rating before notes so that notes
// containing commas cannot be mistaken for a rating field. Saving an
// empty store is a no-op.
func (s *Store) Save() error {
	if len(s.records) == 0 {
		return nil
	}

	path := filepath.Join(s.folder, FileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write metadata table %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	for _, name := range s.Names() {
		rec := s.records[name]
		if err := writer.Write([]string{name, rec.Rating, rec.Notes}); err != nil {
			return fmt.Errorf("failed to write metadata row for %s: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
