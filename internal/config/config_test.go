package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingGivesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
folder: /photos/incoming
filter: "5"
recursive: true
sort: true
bell: true
width: 1920
height: 1080
ticks: 20
extensions: [".jpg", ".jpeg", ".png"]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/photos/incoming", cfg.Folder)
	assert.Equal(t, "5", cfg.Filter)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Sort)
	assert.True(t, cfg.Bell)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 20, cfg.Ticks)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png"}, cfg.Extensions)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folder: [unclosed"), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"filter digit", func(c *Config) { c.Filter = "7" }, true},
		{"filter letter", func(c *Config) { c.Filter = "a" }, false},
		{"filter long", func(c *Config) { c.Filter = "55" }, false},
		{"zero ticks", func(c *Config) { c.Ticks = 0 }, false},
		{"negative width", func(c *Config) { c.Width = -1 }, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
