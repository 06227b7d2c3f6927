// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError aggregates the validation failures of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Errs []error
	}

	// EncodeConfig controls how chunk-writing commands behave.
	EncodeConfig struct {
		// InPlaceDefault makes encode rewrite the input file when no
		// --output flag is given. When false, encode without --output
		// is an error.
		InPlaceDefault bool `mapstructure:"in_place_default" toml:"in_place_default"`

		// Backup writes a <file>.bak copy before any in-place rewrite.
		Backup bool `mapstructure:"backup" toml:"backup"`
	}

	// UIConfig controls presentation.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the root configuration.
	Config struct {
		Encode EncodeConfig `mapstructure:"encode" toml:"encode"`
		UI     UIConfig     `mapstructure:"ui" toml:"ui"`
	}
)

// IsValid reports whether the ColorScheme is one of the recognized values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	}
	return false
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("%v: %q (expected auto, dark, or light)", ErrInvalidColorScheme, e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is classification.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidConfig, errors.Join(e.Errs...))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Encode: EncodeConfig{
			InPlaceDefault: true,
			Backup:         false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate checks constraints the TOML decoder cannot express.
func (c *Config) Validate() error {
	var errs []error
	if !c.UI.ColorScheme.IsValid() {
		errs = append(errs, &InvalidColorSchemeError{Value: c.UI.ColorScheme})
	}
	if len(errs) > 0 {
		return &InvalidConfigError{Errs: errs}
	}
	return nil
}
