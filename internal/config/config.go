package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory upward
const FileName = "primer.toml"

// Config represents the complete configuration for primer
type Config struct {
	LogLevel string `toml:"log_level"`

	TwelveDays TwelveDaysConfig `toml:"twelvedays"`

	// Path of the file the values came from, empty when defaults are used
	Path string `toml:"-"`
}

// TwelveDaysConfig holds options for the verse generator
type TwelveDaysConfig struct {
	// CorrectSpelling replaces the "thrid" and "eigth" ordinals
	CorrectSpelling bool `toml:"correct_spelling"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load finds primer.toml starting from startPath and decodes it.
// A missing file is not an error; defaults are returned instead.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile decodes the given file, which must exist
func LoadFile(path string) (*Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(configData), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", filepath.Base(path), strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Path = path
	return cfg, nil
}

// findConfigFile searches for primer.toml starting from the given path.
// It returns an empty path when no file exists up to the filesystem root.
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", configPath, err)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "error", "warn", "info", "debug":
		return nil
	default:
		return fmt.Errorf("invalid configuration: log_level must be one of error, warn, info, debug (got %q)", c.LogLevel)
	}
}
