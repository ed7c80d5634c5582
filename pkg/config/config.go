package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultSource   = "http://archive.ics.uci.edu/ml/machine-learning-databases/adult/adult.data"
	DefaultPercent  = 95
	DefaultCacheDir = ".cache"
)

// Config holds the settings of one run.
type Config struct {
	// Source identifies the dataset: an http(s) URL or a local path.
	Source string `toml:"source"`

	// Percent is the share of records used for training.
	Percent int `toml:"percent"`

	// CacheDir stores fetched datasets. Empty disables caching.
	CacheDir string `toml:"cache_dir"`

	// Refresh ignores cached datasets and fetches them again.
	Refresh bool `toml:"refresh"`

	// Output names a file receiving one line per test prediction.
	Output string `toml:"output"`

	// StrictLabels rejects records whose class is neither of the two labels.
	StrictLabels bool `toml:"strict_labels"`
}

func Default() Config {
	return Config{
		Source:       DefaultSource,
		Percent:      DefaultPercent,
		CacheDir:     DefaultCacheDir,
		StrictLabels: true,
	}
}

// LoadFile decodes the TOML file at path over a copy of base. Keys absent from
// the file keep the value they have in base.
func LoadFile(path string, base Config) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("missing dataset source")
	}
	if c.Percent < 1 || c.Percent > 99 {
		return fmt.Errorf("split percentage %d must be between 1 and 99", c.Percent)
	}
	return nil
}
