package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"hotview/internal/metadata"
)

// LoggerFunc receives log output from the selection run.
type LoggerFunc func(format string, v ...interface{})

// Selector copies rated images out of a hot folder.
type Selector struct {
	Logger LoggerFunc
}

// NewSelector creates a Selector logging through logger. A nil logger
// silences it.
func NewSelector(logger LoggerFunc) *Selector {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	return &Selector{Logger: logger}
}

// CopySelected copies every image from source whose rating is at
// least minRating into dest. dest is created on the first copy, so an
// empty selection leaves no directory behind. It returns the number
// of images copied.
func (s *Selector) CopySelected(source, dest string, minRating int) (int, error) {
	ratingsPath := filepath.Join(source, metadata.FileName)
	if _, err := os.Stat(ratingsPath); err != nil {
		return 0, fmt.Errorf("no ratings file in %s: %w", source, err)
	}

	store, err := metadata.Load(source)
	if err != nil {
		return 0, err
	}

	copied := 0
	destReady := false
	for _, name := range store.Names() {
		rec := store.Get(name)
		rating, err := strconv.Atoi(rec.Rating)
		if err != nil {
			s.Logger("skipping %s: bad rating %q", name, rec.Rating)
			continue
		}
		if rating < minRating {
			continue
		}
		src := filepath.Join(source, name)
		if info, err := os.Stat(src); err != nil || !info.Mode().IsRegular() {
			s.Logger("skipping %s: rated but not present", name)
			continue
		}
		if !destReady {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return copied, fmt.Errorf("failed to create %s: %w", dest, err)
			}
			destReady = true
		}
		if err := copyFile(src, filepath.Join(dest, name)); err != nil {
			return copied, err
		}
		s.Logger("copied %s (rating %d)", name, rating)
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
