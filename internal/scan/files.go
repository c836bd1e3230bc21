// Package scan enumerates candidate images in the hot folder and
// maintains the ordered image set together with the durable skip-list
// of files that failed to decode.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// DefaultExtensions matches what a camera drops into a hot folder.
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg"}
}

// Scanner enumerates the candidate image paths for one folder. It does
// not mutate the image set; merging is the set's job.
type Scanner struct {
	folder    string
	recursive bool
	exts      map[string]bool
	logger    LoggerFunc
}

// NewScanner creates a Scanner for folder. Extension matching is
// case-insensitive; an empty list falls back to DefaultExtensions.
func NewScanner(folder string, recursive bool, extensions []string, logger LoggerFunc) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	if logger == nil {
		logger = func(string) {}
	}
	return &Scanner{
		folder:    folder,
		recursive: recursive,
		exts:      exts,
		logger:    logger,
	}
}

// Wanted checks whether a path carries one of the configured image
// extensions.
func (s *Scanner) Wanted(path string) bool {
	return s.exts[strings.ToLower(filepath.Ext(path))]
}

// Scan produces the current candidate set, either from the immediate
// folder or from the full subtree.
func (s *Scanner) Scan() ([]string, error) {
	if s.recursive {
		return s.scanTree()
	}
	return s.scanFolder()
}

func (s *Scanner) scanFolder() ([]string, error) {
	entries, err := os.ReadDir(s.folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", s.folder, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !s.Wanted(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(s.folder, entry.Name()))
	}
	return paths, nil
}

func (s *Scanner) scanTree() ([]string, error) {
	var paths []string
	visit := func(p string, info os.FileInfo, err error) error {
		if err != nil {
			// A subdirectory vanishing mid-walk is not fatal.
			s.logger(fmt.Sprintf("scan: skipping %s: %v", p, err))
			return nil
		}
		if info.Mode().IsRegular() && s.Wanted(p) {
			paths = append(paths, p)
		}
		return nil
	}
	if err := filepath.Walk(s.folder, visit); err != nil {
		return nil, fmt.Errorf("failed to walk folder %s: %w", s.folder, err)
	}
	return paths, nil
}
