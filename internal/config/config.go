package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config flag is
// given. Its absence is not an error.
const DefaultPath = "surveyform.yaml"

// Renderer names.
const (
	RendererTUI     = "tui"
	RendererVanilla = "vanilla"
)

// Config is the optional surveyform.yaml file. Flags override every field.
type Config struct {
	Renderer string      `yaml:"renderer"`
	Mount    string      `yaml:"mount"`
	Page     string      `yaml:"page,omitempty"`
	Output   string      `yaml:"output,omitempty"`
	Theme    ThemeConfig `yaml:"theme"`
	Log      LogConfig   `yaml:"log"`
}

// ThemeConfig selects the built-in theme variant for HTML output.
type ThemeConfig struct {
	Variant string `yaml:"variant"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Renderer: RendererTUI,
		Mount:    "root",
		Theme:    ThemeConfig{Variant: "light"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// returns the defaults when it does not exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererVanilla:
	default:
		return fmt.Errorf("renderer must be %q or %q, got %q", RendererTUI, RendererVanilla, c.Renderer)
	}
	if strings.TrimSpace(c.Mount) == "" {
		return fmt.Errorf("mount must not be empty")
	}
	switch c.Theme.Variant {
	case "light", "dark":
	default:
		return fmt.Errorf("theme.variant must be light or dark, got %q", c.Theme.Variant)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "pretty":
	default:
		return fmt.Errorf("log.format must be text, json or pretty, got %q", c.Log.Format)
	}
	return nil
}
