package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotview/internal/metadata"
)

func writeRatedFolder(t *testing.T, ratings map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	store, err := metadata.Load(dir)
	require.NoError(t, err)
	for name, rating := range ratings {
		require.NoError(t, store.SetRating(name, rating))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	return dir
}

func TestCopySelectedByRating(t *testing.T) {
	source := writeRatedFolder(t, map[string]string{
		"keep.jpg":   "4",
		"maybe.jpg":  "3",
		"reject.jpg": "1",
	})
	dest := filepath.Join(t.TempDir(), "picks")

	n, err := NewSelector(nil).CopySelected(source, dest, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.FileExists(t, filepath.Join(dest, "keep.jpg"))
	assert.FileExists(t, filepath.Join(dest, "maybe.jpg"))
	assert.NoFileExists(t, filepath.Join(dest, "reject.jpg"))

	data, err := os.ReadFile(filepath.Join(dest, "keep.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "keep.jpg", string(data))
}

func TestCopySelectedNoRatingsFile(t *testing.T) {
	source := t.TempDir()
	dest := filepath.Join(t.TempDir(), "picks")

	_, err := NewSelector(nil).CopySelected(source, dest, 1)
	assert.Error(t, err)
	assert.NoDirExists(t, dest)
}

func TestCopySelectedEmptySelectionLeavesNoDest(t *testing.T) {
	source := writeRatedFolder(t, map[string]string{"low.jpg": "1"})
	dest := filepath.Join(t.TempDir(), "picks")

	n, err := NewSelector(nil).CopySelected(source, dest, 5)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoDirExists(t, dest)
}

func TestCopySelectedSkipsMissingFiles(t *testing.T) {
	source := writeRatedFolder(t, map[string]string{"here.jpg": "5"})
	store, err := metadata.Load(source)
	require.NoError(t, err)
	require.NoError(t, store.SetRating("gone.jpg", "5"))

	var logged []string
	logger := func(format string, v ...interface{}) {
		logged = append(logged, format)
	}
	dest := filepath.Join(t.TempDir(), "picks")

	n, err := NewSelector(logger).CopySelected(source, dest, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoFileExists(t, filepath.Join(dest, "gone.jpg"))
	assert.Contains(t, logged, "skipping %s: rated but not present")
}

func TestCopySelectedDefaultRatingBelowThreshold(t *testing.T) {
	source := writeRatedFolder(t, map[string]string{"good.jpg": "3"})
	store, err := metadata.Load(source)
	require.NoError(t, err)
	require.NoError(t, store.SetNotes("odd.jpg", "has default rating"))
	require.NoError(t, os.WriteFile(filepath.Join(source, "odd.jpg"), []byte("x"), 0o644))

	dest := filepath.Join(t.TempDir(), "picks")
	n, err := NewSelector(nil).CopySelected(source, dest, 1)
	require.NoError(t, err)
	// odd.jpg carries the default rating 0, below the threshold.
	assert.Equal(t, 1, n)
}
