package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, DefaultSource, cfg.Source)
	require.Equal(t, 95, cfg.Percent)
	require.True(t, cfg.StrictLabels)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	content := "source = \"data/adult.data\"\npercent = 80\nstrict_labels = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	require.Equal(t, "data/adult.data", cfg.Source)
	require.Equal(t, 80, cfg.Percent)
	require.False(t, cfg.StrictLabels)
	require.Equal(t, DefaultCacheDir, cfg.CacheDir)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	require.NoError(t, os.WriteFile(path, []byte("percent = \"many\""), 0o644))

	_, err := LoadFile(path, Default())
	require.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"), Default())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"empty source", func(c *Config) { c.Source = " " }, true},
		{"zero percent", func(c *Config) { c.Percent = 0 }, true},
		{"all training", func(c *Config) { c.Percent = 100 }, true},
		{"half", func(c *Config) { c.Percent = 50 }, false},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		err := cfg.Validate()
		if tt.wantErr {
			require.Error(t, err, tt.name)
		} else {
			require.NoError(t, err, tt.name)
		}
	}
}
