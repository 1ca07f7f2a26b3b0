// Package config loads picker settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/hueseek"
)

// Config describes a picker and the widget it is hosted in.
//
// Example file:
//
//	bar_width: 24
//	style: centered
//	variant: revised
//	width: 200
//	height: 400
//	background: "#FF202020"
type Config struct {
	BarWidth   int             `yaml:"bar_width"`
	Style      hueseek.Style   `yaml:"style"`
	Variant    hueseek.Variant `yaml:"variant"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Background Color           `yaml:"background"`
}

// Color is a hueseek.Color written as "#RRGGBB" or "#AARRGGBB".
type Color hueseek.Color

// UnmarshalYAML implements yaml.Unmarshaler for Color.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := hueseek.ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Color.
func (c Color) MarshalYAML() (any, error) {
	return hueseek.Color(c).Hex(), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BarWidth:   hueseek.DefaultBarWidth,
		Style:      hueseek.DefaultStyle,
		Variant:    hueseek.VariantRevised,
		Width:      200,
		Height:     400,
		Background: Color(hueseek.Transparent),
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges that the YAML types cannot express.
func (c Config) Validate() error {
	if c.BarWidth <= 0 {
		return fmt.Errorf("%w: %d", hueseek.ErrInvalidBarWidth, c.BarWidth)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: widget size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// Options converts the picker settings to hueseek options.
func (c Config) Options() []hueseek.Option {
	return []hueseek.Option{
		hueseek.WithBarWidth(c.BarWidth),
		hueseek.WithStyle(c.Style),
		hueseek.WithVariant(c.Variant),
	}
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
