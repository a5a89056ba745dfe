package config

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"strings"

	"github.com/xll-gen/assetpack/internal/scan"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "assetpack.yaml"

// Config represents the structure of assetpack.yaml.
// It lists the asset tree to scan and how the generated package looks.
type Config struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`
	// Roots are the asset root directories, one per tier, scanned in order.
	Roots []string `yaml:"roots"`
	// Categories are the subdirectories scanned under each root, in order.
	Categories []string `yaml:"categories"`
	// KeySeparator joins category and file name in lookup keys ("/" or "\").
	KeySeparator string `yaml:"key_separator"`
	// Mode is "literal" (string constants) or "embed" (//go:embed directives).
	Mode string `yaml:"mode"`
	// Output is the generated file path. Empty means stdout.
	Output string `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Load reads the configuration at path, applies defaults and validates it.
// A missing file is not an error when missingOK is set; defaults are used.
func Load(path string, missingOK bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case missingOK && errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Package == "" {
		config.Package = "assets"
	}
	if len(config.Roots) == 0 {
		config.Roots = []string{"assets", "secret-assets"}
	}
	if len(config.Categories) == 0 {
		for _, c := range scan.Categories {
			config.Categories = append(config.Categories, string(c))
		}
	}
	if config.KeySeparator == "" {
		config.KeySeparator = "/"
	}
	if config.Mode == "" {
		config.Mode = "literal"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors such as unknown categories,
// duplicate roots or an unusable package name.
func Validate(config *Config) error {
	if !token.IsIdentifier(config.Package) || config.Package == "_" {
		return fmt.Errorf("invalid package name: %q", config.Package)
	}

	if len(config.Roots) == 0 {
		return fmt.Errorf("at least one root is required")
	}
	seenRoots := make(map[string]bool)
	for _, r := range config.Roots {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("empty root directory")
		}
		if seenRoots[r] {
			return fmt.Errorf("duplicate root: %s", r)
		}
		seenRoots[r] = true
	}

	seenCategories := make(map[string]bool)
	for _, c := range config.Categories {
		if _, ok := scan.ParseCategory(c); !ok {
			return fmt.Errorf("unknown category: %s (allowed: %s)", c, allowedCategories())
		}
		if seenCategories[c] {
			return fmt.Errorf("duplicate category: %s", c)
		}
		seenCategories[c] = true
	}

	switch config.KeySeparator {
	case "/", `\`:
		// ok
	default:
		return fmt.Errorf("invalid key_separator: %q (allowed: \"/\", \"\\\\\")", config.KeySeparator)
	}

	switch config.Mode {
	case "literal", "embed":
		// ok
	default:
		return fmt.Errorf("invalid mode: %s (allowed: literal, embed)", config.Mode)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
	}

	return nil
}

// ScanCategories converts the configured category names.
// It assumes Validate has passed.
func (c *Config) ScanCategories() []scan.Category {
	out := make([]scan.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, _ := scan.ParseCategory(name)
		out = append(out, cat)
	}
	return out
}

func allowedCategories() string {
	names := make([]string, 0, len(scan.Categories))
	for _, c := range scan.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
