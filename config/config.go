// SPDX-License-Identifier: MIT

// Package config loads the CLI defaults file.
//
// A file is YAML (.yaml, .yml) or TOML (.toml), chosen by extension. Keys the
// file omits keep the values of Default; unknown keys are rejected. The
// decoded result is checked with struct validation tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the defaults file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level" validate:"oneof=debug info warn error"`

	// Format is the output format: text or json.
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`

	// Jobs bounds how many targets are searched concurrently.
	Jobs int `yaml:"jobs" toml:"jobs" validate:"gte=1,lte=64"`

	Combine Combine `yaml:"combine" toml:"combine"`
	Divider Divider `yaml:"divider" toml:"divider"`
}

// Combine holds defaults for the resistor and capacitor commands.
type Combine struct {
	// Series is a series name (e24) or a value list (100,220,4.7k).
	Series string `yaml:"series" toml:"series" validate:"required"`

	// SeriesMin and SeriesMax clip the catalog; 0 derives them from the
	// target (target/1000 and target·1000).
	SeriesMin float64 `yaml:"series_min" toml:"series_min" validate:"gte=0"`
	SeriesMax float64 `yaml:"series_max" toml:"series_max" validate:"gte=0"`

	NumElemsMin int `yaml:"num_elems_min" toml:"num_elems_min" validate:"gte=1,lte=15"`
	NumElemsMax int `yaml:"num_elems_max" toml:"num_elems_max" validate:"gte=1,lte=15,gtefield=NumElemsMin"`

	// TolMin and TolMax are percentages relative to the target.
	TolMin float64 `yaml:"tol_min" toml:"tol_min" validate:"gte=-100,lte=0"`
	TolMax float64 `yaml:"tol_max" toml:"tol_max" validate:"gte=0"`

	Topology string `yaml:"topology" toml:"topology" validate:"oneof=series parallel any"`
	MaxDepth int    `yaml:"max_depth" toml:"max_depth" validate:"gte=0"`
}

// Divider holds defaults for the divider command.
type Divider struct {
	Series    string  `yaml:"series" toml:"series" validate:"required"`
	SeriesMin float64 `yaml:"series_min" toml:"series_min" validate:"gt=0"`
	SeriesMax float64 `yaml:"series_max" toml:"series_max" validate:"gtfield=SeriesMin"`

	NumElemsMin int `yaml:"num_elems_min" toml:"num_elems_min" validate:"gte=1,lte=15"`
	NumElemsMax int `yaml:"num_elems_max" toml:"num_elems_max" validate:"gte=2,lte=15,gtefield=NumElemsMin"`

	TotalMin float64 `yaml:"total_min" toml:"total_min" validate:"gt=0"`
	TotalMax float64 `yaml:"total_max" toml:"total_max" validate:"gtefield=TotalMin"`

	TolMin float64 `yaml:"tol_min" toml:"tol_min" validate:"gte=-100,lte=0"`
	TolMax float64 `yaml:"tol_max" toml:"tol_max" validate:"gte=0"`

	Topology string `yaml:"topology" toml:"topology" validate:"oneof=series parallel any"`
	MaxDepth int    `yaml:"max_depth" toml:"max_depth" validate:"gte=0"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   "text",
		Jobs:     1,
		Combine: Combine{
			Series:      "e3",
			NumElemsMin: 1,
			NumElemsMax: 3,
			TolMin:      -50,
			TolMax:      50,
			Topology:    "any",
			MaxDepth:    9999,
		},
		Divider: Divider{
			Series:      "e3",
			SeriesMin:   1e2,
			SeriesMax:   1e6,
			NumElemsMin: 2,
			NumElemsMax: 4,
			TotalMin:    10000,
			TotalMax:    100000,
			TolMin:      -50,
			TolMax:      50,
			Topology:    "any",
			MaxDepth:    9999,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c against its field tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads path over Default and validates the result.
//
// Errors: ErrInvalidConfig for unreadable files, unknown extensions,
// malformed content, unknown keys and failed validation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return Parse(filepath.Ext(path), data)
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".toml")
// over Default and validates the result.
func Parse(ext string, data []byte) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and keeps the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: toml: %v", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: toml: unknown keys %v", ErrInvalidConfig, undecoded)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
