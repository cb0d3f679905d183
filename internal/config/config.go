// Package config loads the per-user viewdoc configuration: the selected style
// name, the style-name to fragment mapping, and the build-script settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/alnah/go-viewdoc/internal/assets"
	"github.com/alnah/go-viewdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse       = errors.New("failed to parse config")
	ErrConfigWrite       = errors.New("failed to write default config")
	ErrInvalidSearchPath = errors.New("invalid search path entry")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)

// Built-in defaults, used when the file leaves a setting out.
const (
	DefaultStyle     = assets.PyPIStyleName
	DefaultPython    = "python3"
	DefaultHighlight = "github"
)

// Field length limits.
const (
	MaxNameLength   = 100  // style, interpreter and highlight names
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxSearchPaths  = 64
	MaxFragmentSize = 64 << 10
)

// File permission constants.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Config holds the viewdoc settings.
type Config struct {
	Viewdoc ViewdocConfig     `yaml:"viewdoc"`
	Styles  map[string]string `yaml:"styles"`
}

// ViewdocConfig is the scalar settings section.
type ViewdocConfig struct {
	Style      string   `yaml:"style"`      // Selected entry of Styles
	Python     string   `yaml:"python"`     // Interpreter running setup.py
	SearchPath []string `yaml:"searchPath"` // Appended to PYTHONPATH
	Highlight  string   `yaml:"highlight"`  // Chroma style for code blocks
}

// DefaultPath returns the per-user config location,
// $XDG_CONFIG_HOME/viewdoc/config.yaml (~/.config/viewdoc/config.yaml on Linux).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "viewdoc", "config.yaml")
}

// DefaultConfig returns the built-in configuration: only the "pypi" style,
// selected.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.normalize()
	return cfg
}

// Load reads the config file at path.
//
// A missing file is created from the default template. Failing to create it
// is logged as a warning and the template is used from memory. An unreadable
// file is logged and built-in defaults apply. Only a malformed file is an error.
func Load(path string, logger zerolog.Logger) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	switch {
	case errors.Is(err, os.ErrNotExist):
		data = assets.ConfigTemplate()
		if werr := writeDefault(path, data); werr != nil {
			logger.Warn().Err(werr).Str("path", path).Msg("using built-in configuration")
		} else {
			logger.Debug().Str("path", path).Msg("wrote default configuration")
		}
	case err != nil:
		logger.Warn().Err(err).Str("path", path).Msg("cannot read configuration, using defaults")
		return DefaultConfig(), nil
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().Str("path", path).Str("style", cfg.Viewdoc.Style).Int("styles", len(cfg.Styles)).Msg("configuration loaded")
	return cfg, nil
}

// Parse decodes and normalizes configuration data. Empty data yields
// DefaultConfig.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil && !errors.Is(err, yamlutil.ErrEmptyDocument) {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return &cfg, nil
}

// writeDefault creates the config file and its parent directory.
func writeDefault(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	return nil
}

// normalize fills defaults, re-terminates every fragment with exactly one
// newline and guarantees the "pypi" style exists.
func (c *Config) normalize() {
	if c.Viewdoc.Style == "" {
		c.Viewdoc.Style = DefaultStyle
	}
	if c.Viewdoc.Python == "" {
		c.Viewdoc.Python = DefaultPython
	}
	if c.Viewdoc.Highlight == "" {
		c.Viewdoc.Highlight = DefaultHighlight
	}

	styles := make(map[string]string, len(c.Styles)+1)
	for name, fragment := range c.Styles {
		styles[name] = strings.TrimSpace(fragment) + "\n"
	}
	if _, ok := styles[assets.PyPIStyleName]; !ok {
		styles[assets.PyPIStyleName] = assets.PyPIStyle()
	}
	c.Styles = styles
}

// Validate checks field sizes and that search path entries can be joined
// into PYTHONPATH.
func (c *Config) Validate() error {
	if err := validateFieldLength("viewdoc.style", c.Viewdoc.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("viewdoc.python", c.Viewdoc.Python, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("viewdoc.highlight", c.Viewdoc.Highlight, MaxNameLength); err != nil {
		return err
	}

	if len(c.Viewdoc.SearchPath) > MaxSearchPaths {
		return fmt.Errorf("%w: %d entries (max %d)", ErrInvalidSearchPath, len(c.Viewdoc.SearchPath), MaxSearchPaths)
	}
	for i, dir := range c.Viewdoc.SearchPath {
		field := fmt.Sprintf("viewdoc.searchPath[%d]", i)
		if dir == "" || strings.ContainsRune(dir, os.PathListSeparator) {
			return fmt.Errorf("%w: %s %q", ErrInvalidSearchPath, field, dir)
		}
		if err := validateFieldLength(field, dir, MaxPathLength); err != nil {
			return err
		}
	}

	for name, fragment := range c.Styles {
		if err := validateFieldLength("styles."+name, fragment, MaxFragmentSize); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// StyleFragment returns the fragment registered under name, or "" when the
// name is unknown.
func (c *Config) StyleFragment(name string) string {
	return c.Styles[name]
}

// SelectedFragment returns the fragment of the configured style.
func (c *Config) SelectedFragment() string {
	return c.StyleFragment(c.Viewdoc.Style)
}

// StyleNames lists the configured style names in sorted order.
func (c *Config) StyleNames() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
