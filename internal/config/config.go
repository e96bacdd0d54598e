// Package config loads the phex user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultTemplate is used by `phex render` when neither the command
// line nor the config file supplies one.
const DefaultTemplate = "$(EXIF.YEAR)$(EXIF.MONTH)$(EXIF.DAY)_$(SEQUENCE).$(FILE.EXTENSION)"

// Overrides replaces values otherwise derived from the environment.
type Overrides struct {
	Username    string `toml:"username"`
	HomeDir     string `toml:"home_dir"`
	PicturesDir string `toml:"pictures_dir"`
	DesktopDir  string `toml:"desktop_dir"`
}

// Config holds the phex configuration.
type Config struct {
	Template      string    `toml:"template"`       // default render template
	SequenceStart int       `toml:"sequence_start"` // first sequence number
	Overrides     Overrides `toml:"overrides"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Template:      DefaultTemplate,
		SequenceStart: 1,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "phex", "config.toml"), nil
}

// Load reads config from ~/.config/phex/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.SequenceStart < 1 {
		cfg.SequenceStart = 1
	}

	for field, dir := range map[string]*string{
		"overrides.home_dir":     &cfg.Overrides.HomeDir,
		"overrides.pictures_dir": &cfg.Overrides.PicturesDir,
		"overrides.desktop_dir":  &cfg.Overrides.DesktopDir,
	} {
		if err := validatePath(*dir, field); err != nil {
			return Default(), err
		}
		expanded, err := expandPath(*dir)
		if err != nil {
			return Default(), fmt.Errorf("expand %s: %w", field, err)
		}
		*dir = expanded
	}

	return cfg, nil
}

// validatePath checks that the path is absolute or starts with ~.
// Empty is allowed and means "not configured".
func validatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
// Shells don't expand ~ inside config files.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
