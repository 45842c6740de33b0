// File: config.go
// Title: Settings Loading
// Description: Loads typed settings from TOML or YAML files and strings,
//              applies defaults and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed settings, unknown keys rejected

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings holds the complete epochx configuration
type Settings struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	// file the settings were loaded from, empty for defaults
	source string
}

// GeneralConfig holds conversion settings
type GeneralConfig struct {
	Timezone  string `toml:"timezone" yaml:"timezone" validate:"required"`
	Multiply  string `toml:"multiply" yaml:"multiply" validate:"required"`
	TimeTBits int    `toml:"time_t_bits" yaml:"time_t_bits" validate:"oneof=32 64"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"required"`
	Format string `toml:"format" yaml:"format" validate:"required"`
}

// Default returns settings with every default applied
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Source returns the file the settings were loaded from
func (s *Settings) Source() string {
	return s.source
}

// Load loads settings from a TOML or YAML file, chosen by extension
func Load(path string) (*Settings, error) {
	path = os.ExpandEnv(path)
	if strings.TrimSpace(path) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	s, err := parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("failed to parse config file %s", path)).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}
	s.source = path
	return s, nil
}

// LoadFromString loads settings from content in the given format
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	return parse([]byte(content), format)
}

func parse(content []byte, format Format) (*Settings, error) {
	s := &Settings{}

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), s)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, mdwerror.New(fmt.Sprintf("unknown config keys: %s", strings.Join(keys, ", "))).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parse").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	s.applyDefaults()
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (s *Settings) applyDefaults() {
	if s.General.Timezone == "" {
		s.General.Timezone = "Local"
	}
	if s.General.Multiply == "" {
		s.General.Multiply = "default"
	}
	if s.General.TimeTBits == 0 {
		s.General.TimeTBits = 64
	}
	if s.Log.Level == "" {
		s.Log.Level = "warn"
	}
	if s.Log.Format == "" {
		s.Log.Format = "text"
	}
}

// applyEnv overrides settings from EPOCHX_* environment variables
func (s *Settings) applyEnv() error {
	if v, ok := os.LookupEnv("EPOCHX_TIMEZONE"); ok && v != "" {
		s.General.Timezone = v
	}
	if v, ok := os.LookupEnv("EPOCHX_MULTIPLY"); ok && v != "" {
		s.General.Multiply = v
	}
	if v, ok := os.LookupEnv("EPOCHX_TIME_T_BITS"); ok && v != "" {
		bits, err := strconv.Atoi(v)
		if err != nil {
			return mdwerror.Wrap(err, "EPOCHX_TIME_T_BITS is not a number").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.applyEnv").
				WithDetail("value", v)
		}
		s.General.TimeTBits = bits
	}
	if v, ok := os.LookupEnv("EPOCHX_LOG_LEVEL"); ok && v != "" {
		s.Log.Level = v
	}
	if v, ok := os.LookupEnv("EPOCHX_LOG_FORMAT"); ok && v != "" {
		s.Log.Format = v
	}
	return nil
}
