package scan

import (
	"math/rand"
	"os"
	"sort"
)

// Skips is the read side of the skip-list, satisfied by *SkipStore.
type Skips interface {
	Contains(path string) bool
}

// ImageSet is the ordered sequence of known image paths. A path is
// never present twice, and never present while it is on the skip-list.
type ImageSet struct {
	paths  []string
	known  map[string]bool
	sorted bool
	random bool
	rescan bool
	rng    *rand.Rand
}

// NewImageSet creates an empty set. With sorted, the whole set is
// re-sorted by path after every merge; with random, each new batch is
// shuffled before it is appended.
func NewImageSet(sorted, random bool, seed int64) *ImageSet {
	return &ImageSet{
		known:  make(map[string]bool),
		sorted: sorted,
		random: random,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Len reports the number of known images.
func (s *ImageSet) Len() int { return len(s.paths) }

// Path returns the path at index i.
func (s *ImageSet) Path(i int) string { return s.paths[i] }

// Paths returns a copy of the ordered path list.
func (s *ImageSet) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Contains reports whether path is already in the set.
func (s *ImageSet) Contains(path string) bool { return s.known[path] }

// IndexOf returns the position of path, or -1.
func (s *ImageSet) IndexOf(path string) int {
	for i, p := range s.paths {
		if p == path {
			return i
		}
	}
	return -1
}

// Merge appends the candidates that are not already known, not on the
// skip-list, and still present on disk at merge time. It returns the
// appended batch in its final order. With the random option the batch
// (only the batch) is shuffled first; with the sorted option the whole
// set is re-sorted afterwards.
func (s *ImageSet) Merge(candidates []string, skips Skips) []string {
	var batch []string
	for _, path := range candidates {
		if s.known[path] {
			continue
		}
		if skips != nil && skips.Contains(path) {
			continue
		}
		// The file may have disappeared between enumeration and merge.
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}
		batch = append(batch, path)
	}
	if len(batch) == 0 {
		return nil
	}

	if s.random {
		s.rng.Shuffle(len(batch), func(i, j int) {
			batch[i], batch[j] = batch[j], batch[i]
		})
	}
	for _, path := range batch {
		s.paths = append(s.paths, path)
		s.known[path] = true
	}
	if s.sorted {
		sort.Strings(s.paths)
	}
	return batch
}

// RemoveAt deletes the entry at index i, keeping order.
func (s *ImageSet) RemoveAt(i int) {
	delete(s.known, s.paths[i])
	s.paths = append(s.paths[:i], s.paths[i+1:]...)
}

// Clear empties the set. The skip-list is deliberately untouched;
// only an explicit user action clears it.
func (s *ImageSet) Clear() {
	s.paths = nil
	s.known = make(map[string]bool)
}

// RequestRescan marks the set for a from-scratch rebuild on the next
// update pass.
func (s *ImageSet) RequestRescan() { s.rescan = true }

// TakeRescan consumes the rescan flag.
func (s *ImageSet) TakeRescan() bool {
	r := s.rescan
	s.rescan = false
	return r
}
