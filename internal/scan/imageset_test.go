package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSkips map[string]bool

func (f fakeSkips) Contains(path string) bool { return f[path] }

// tempImages creates n files and returns their paths in name order.
func tempImages(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		writeFile(t, paths[i])
	}
	return paths
}

func TestMergeAppendsNewOnly(t *testing.T) {
	paths := tempImages(t, "a.jpg", "b.jpg", "c.jpg")
	set := NewImageSet(false, false, 1)

	batch := set.Merge(paths, nil)
	assert.Equal(t, paths, batch)
	assert.Equal(t, 3, set.Len())

	// Merging the same candidates again must not duplicate anything.
	batch = set.Merge(paths, nil)
	assert.Empty(t, batch)
	assert.Equal(t, 3, set.Len())
}

func TestMergeExcludesSkipListed(t *testing.T) {
	paths := tempImages(t, "a.jpg", "bad.jpg")
	set := NewImageSet(false, false, 1)

	skips := fakeSkips{paths[1]: true}
	batch := set.Merge(paths, skips)
	assert.Equal(t, []string{paths[0]}, batch)
	assert.False(t, set.Contains(paths[1]), "skip-listed path must never enter the set")
}

func TestMergeExcludesVanishedFiles(t *testing.T) {
	paths := tempImages(t, "a.jpg", "gone.jpg")
	require.NoError(t, os.Remove(paths[1]))

	set := NewImageSet(false, false, 1)
	batch := set.Merge(paths, nil)
	assert.Equal(t, []string{paths[0]}, batch)
}

func TestMergeSortedResortsWholeSet(t *testing.T) {
	paths := tempImages(t, "a.jpg", "b.jpg", "z.jpg")
	set := NewImageSet(true, false, 1)

	set.Merge([]string{paths[2], paths[1]}, nil)
	set.Merge([]string{paths[0]}, nil)

	assert.Equal(t, []string{paths[0], paths[1], paths[2]}, set.Paths(),
		"whole set must be alphabetical after each merge")
}

func TestMergeRandomShufflesBatchOnly(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = string(rune('a'+i)) + ".jpg"
	}
	paths := tempImages(t, names...)

	first := paths[:2]
	set := NewImageSet(false, true, 42)
	set.Merge(first, nil)
	existing := set.Paths()[:2]

	set.Merge(paths, nil)
	// The earlier entries keep their positions; only the new batch was
	// shuffled before appending.
	assert.Equal(t, existing, set.Paths()[:2])
	assert.Equal(t, len(paths), set.Len())
	assert.ElementsMatch(t, paths, set.Paths())
}

func TestRemoveAt(t *testing.T) {
	paths := tempImages(t, "a.jpg", "b.jpg", "c.jpg")
	set := NewImageSet(false, false, 1)
	set.Merge(paths, nil)

	set.RemoveAt(1)
	assert.Equal(t, []string{paths[0], paths[2]}, set.Paths())
	assert.False(t, set.Contains(paths[1]))

	// A removed path may be merged back in later.
	batch := set.Merge([]string{paths[1]}, nil)
	assert.Equal(t, []string{paths[1]}, batch)
}

func TestRescanFlag(t *testing.T) {
	set := NewImageSet(false, false, 1)
	assert.False(t, set.TakeRescan())
	set.RequestRescan()
	assert.True(t, set.TakeRescan())
	assert.False(t, set.TakeRescan(), "flag is consumed")
}
