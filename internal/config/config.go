package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the merge defaults read from config.yaml. Command-line flags
// override every field.
type Config struct {
	Currency   string `yaml:"currency"`
	OutputDir  string `yaml:"output_dir"` // "~" is expanded
	FilePrefix string `yaml:"file_prefix"`
	Workbook   bool   `yaml:"workbook"`
}

// DefaultPath returns <user config dir>/bankcsv/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "bankcsv", "config.yaml"), nil
}

// Load reads a config file from disk. Keys absent from the file keep their
// defaults, and a missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in settings: EUR into ~/Downloads.
func Default() *Config {
	return &Config{
		Currency:   "EUR",
		OutputDir:  filepath.Join("~", "Downloads"),
		FilePrefix: "bank-csv-transactions",
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
